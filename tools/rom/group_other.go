//go:build !unix

package rom

import (
	"os"
	"os/exec"
)

func newGroup(cmd *exec.Cmd) {}

func interruptGroup(cmd *exec.Cmd) error {
	return cmd.Process.Signal(os.Interrupt)
}
