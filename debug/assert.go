//go:build debug

package debug

// Guard assertions that need computation with `if debug.Enabled {...}`, so
// release builds don't pay for them.
const Enabled = true

// Assert panics with message if b is false. It's safe to call from interrupt
// handlers as long as message is a constant.
//
//go:nosplit
func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}
