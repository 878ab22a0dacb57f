//go:build windows

package launcher

import (
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// command builds the process for target. Shortcuts are opened through the
// shell; executables get their own console and process group so closing
// ours leaves them running.
func command(target, file string) *exec.Cmd {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".lnk", ".url", ".appref-ms":
		cmd := exec.Command("cmd", "/C", "start", "", target, file)
		cmd.SysProcAttr = &syscall.SysProcAttr{
			HideWindow:    true,
			CreationFlags: windows.CREATE_NO_WINDOW,
		}
		return cmd
	default:
		//nolint:gosec // G204: target comes from configuration or an explicit user choice
		cmd := exec.Command(target, file)
		cmd.SysProcAttr = &syscall.SysProcAttr{
			CreationFlags: windows.CREATE_NEW_CONSOLE | windows.CREATE_NEW_PROCESS_GROUP,
		}
		return cmd
	}
}
