package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// AppConfig locates one candidate application.
// Executable and ScriptingLib are slash-separated paths relative to Dir.
type AppConfig struct {
	Name         string
	Dir          string
	Executable   string
	ScriptingLib string
	Version      string
}

// Located reports whether the application directory is configured.
func (a AppConfig) Located() bool {
	return strings.TrimSpace(a.Dir) != ""
}

// ExecutablePath returns the absolute path of the application executable.
func (a AppConfig) ExecutablePath() string {
	return filepath.Join(a.Dir, filepath.FromSlash(a.Executable))
}

// ScriptingLibPath returns the directory holding the scripting library.
func (a AppConfig) ScriptingLibPath() string {
	return filepath.Join(a.Dir, filepath.FromSlash(a.ScriptingLib))
}

// DisplayName returns the configured name or fallback.
func (a AppConfig) DisplayName(fallback string) string {
	if a.Name != "" {
		return a.Name
	}
	return fallback
}

// ProbeConfig tunes the live open-probe.
type ProbeConfig struct {
	Interpreter string
	Timeout     time.Duration
}

// Config is the deployment configuration.
type Config struct {
	Primary      AppConfig
	Secondary    AppConfig
	AutoExecute  bool
	UseLiveProbe bool
	OverrideWait time.Duration
	OverrideKey  string
	Probe        ProbeConfig
	ShortcutsDir string
}

// App returns the configuration of the application behind a Program.
func (c *Config) App(p Program) (AppConfig, bool) {
	switch p.Kind {
	case KindPrimary:
		return c.Primary, true
	case KindSecondary:
		return c.Secondary, true
	default:
		return AppConfig{}, false
	}
}

// ProbeTimeout returns the per-worker deadline, falling back to the default.
func (c *Config) ProbeTimeout() time.Duration {
	if c.Probe.Timeout > 0 {
		return c.Probe.Timeout
	}
	return DefaultProbeTimeout
}

// Interpreter returns the scripting host used by probe workers.
func (c *Config) Interpreter() string {
	if c.Probe.Interpreter != "" {
		return c.Probe.Interpreter
	}
	return DefaultInterpreter
}

// SecondaryExecutable derives the secondary executable path from a version
// string such as "35.6.2". An empty or malformed version uses the default major.
func SecondaryExecutable(version string) string {
	return "PSSBIN/psse" + majorVersion(version) + ".exe"
}

// SecondaryScriptingModule derives the bootstrap module name that prepares
// the secondary scripting library for a given version.
func SecondaryScriptingModule(version string) string {
	return "psse" + majorVersion(version)
}

func majorVersion(version string) string {
	major, _, _ := strings.Cut(strings.TrimSpace(version), ".")
	if major == "" {
		return DefaultSecondaryMajor
	}
	for _, r := range major {
		if r < '0' || r > '9' {
			return DefaultSecondaryMajor
		}
	}
	return major
}

// NewDefaultConfig returns the configuration written by setup before any
// directory has been validated.
func NewDefaultConfig() *Config {
	return &Config{
		Primary: AppConfig{
			Name:         DefaultPrimaryName,
			Dir:          DefaultPrimaryDir,
			Executable:   PrimaryExecutable,
			ScriptingLib: PrimaryScriptingLib,
		},
		Secondary: AppConfig{
			Name:         DefaultSecondaryName,
			Dir:          DefaultSecondaryDir,
			Executable:   SecondaryExecutable(""),
			ScriptingLib: SecondaryScriptingLibDir,
		},
		AutoExecute:  true,
		UseLiveProbe: false,
		OverrideWait: DefaultOverrideWait,
		Probe: ProbeConfig{
			Interpreter: DefaultInterpreter,
			Timeout:     DefaultProbeTimeout,
		},
	}
}
