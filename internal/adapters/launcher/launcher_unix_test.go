//go:build !windows

package launcher_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/adapters/launcher"
	"go.trai.ch/ppd/internal/core/domain"
)

// fakeApp installs an executable script under dir/rel that records its
// working directory and arguments next to the opened file.
func fakeApp(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	script := "#!/bin/sh\nprintf '%s\\n%s\\n' \"$(pwd)\" \"$*\" > launched.txt\n"
	//nolint:gosec // test executable
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
}

func waitForMarker(t *testing.T, dir string) []string {
	t.Helper()
	marker := filepath.Join(dir, "launched.txt")
	var data []byte
	require.Eventually(t, func() bool {
		var err error
		data, err = os.ReadFile(marker)
		return err == nil && strings.Count(string(data), "\n") == 2
	}, 5*time.Second, 10*time.Millisecond)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestLauncher_PrimaryFromConfig(t *testing.T) {
	install := t.TempDir()
	fakeApp(t, install, "bin/pslf")

	caseDir := t.TempDir()
	file := filepath.Join(caseDir, "case.sav")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	cfg := domain.NewDefaultConfig()
	cfg.Primary.Dir = install
	cfg.Primary.Executable = "bin/pslf"

	require.NoError(t, launcher.New(nil).Launch(context.Background(), domain.Primary, file, cfg))

	lines := waitForMarker(t, caseDir)
	wantDir, err := filepath.EvalSymlinks(caseDir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(lines[0])
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, file, lines[1])
}

func TestLauncher_OtherCommand(t *testing.T) {
	tools := t.TempDir()
	fakeApp(t, tools, "hexedit")

	caseDir := t.TempDir()
	file := filepath.Join(caseDir, "case.raw")

	err := launcher.New(nil).Launch(context.Background(), domain.Other(filepath.Join(tools, "hexedit")), file, nil)
	require.NoError(t, err)
	assert.Equal(t, file, waitForMarker(t, caseDir)[1])
}

func TestLauncher_MissingExecutable(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Secondary.Dir = t.TempDir()

	err := launcher.New(nil).Launch(context.Background(), domain.Secondary, filepath.Join(t.TempDir(), "case.raw"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLaunchFailed.Error())
}
