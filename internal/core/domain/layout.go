package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// HomeEnvVar overrides the directory holding configuration and state.
	HomeEnvVar = "PPD_HOME"

	// EnvPrefix is the prefix for configuration overrides from the environment.
	EnvPrefix = "PPD"

	// AppDirName is the directory created under the user config dir.
	AppDirName = "ppd"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// HistoryFileName is the name of the history file.
	HistoryFileName = "history.json"

	// JournalFileName is the name of the usage journal database.
	JournalFileName = "journal.db"

	// LogFileName is the file logs go to while the terminal UI is running.
	LogFileName = "ppd.log"
)

// Installation layout of the candidate applications.
const (
	DefaultPrimaryName   = "PSLF"
	DefaultSecondaryName = "PSSE"

	DefaultPrimaryDir   = `C:\Program Files\GE PSLF`
	DefaultSecondaryDir = `C:\Program Files\PTI\PSSE35\35.6`

	PrimaryExecutable        = "Pslf.exe"
	PrimaryScriptingLib      = "PslfPython"
	PrimaryScriptingModule   = "PSLF_PYTHON"
	SecondaryScriptingLibDir = "PSSPY311"
	DefaultSecondaryMajor    = "35"

	// SecondaryReadme holds the installed version of the secondary application.
	SecondaryReadme = "readme.txt"

	DefaultInterpreter = "python"
)

// Timing defaults.
const (
	DefaultOverrideWait = 475 * time.Millisecond
	DefaultProbeTimeout = 90 * time.Second
	DefaultJournalLimit = 20
)

const (
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
	// PrivateFilePerm is the permission for files holding user state (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultHome returns the directory holding configuration and state.
func DefaultHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}
