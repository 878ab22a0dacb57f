//go:build !windows

package scripting

import (
	"os/exec"
	"syscall"
)

// killTree puts the interpreter in its own process group and kills the whole
// group on cancellation.
func killTree(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
