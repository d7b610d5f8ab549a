//go:build !debug

// Package debug provides invariant checks that are compiled in with the debug
// build tag and vanish otherwise.
package debug

const Enabled = false

// Assert panics with message if b is false, but only in debug builds.
//
//go:nosplit
func Assert(b bool, message string) {}
