//go:build !windows

package launcher

import (
	"os/exec"
	"runtime"
	"strings"
	"syscall"
)

// command builds the process for target. macOS bundles go through open(1)
// and desktop entries through gio; anything else is executed directly. The
// child gets its own session so it survives the terminal closing.
func command(target, file string) *exec.Cmd {
	var cmd *exec.Cmd
	switch {
	case runtime.GOOS == "darwin" && strings.HasSuffix(target, ".app"):
		cmd = exec.Command("open", "-a", target, file)
	case strings.HasSuffix(target, ".desktop"):
		cmd = exec.Command("gio", "launch", target, file)
	default:
		//nolint:gosec // G204: target comes from configuration or an explicit user choice
		cmd = exec.Command(target, file)
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}
