//go:build !gba

// Package testing provides utilities for writing tests that can also run on
// the console.
package testing

import (
	"os"
	"testing"
)

// TestMain should be used as TestMain in packages whose tests also run on
// the console. On a host it just runs the tests.
func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
