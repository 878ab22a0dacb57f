// Package install validates application directories and decides whether the
// live probe can be enabled.
package install

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
)

// versionTimeout bounds each "--version" invocation.
const versionTimeout = 15 * time.Second

// VersionFunc returns the output of running exe --version.
type VersionFunc func(ctx context.Context, exe string) ([]byte, error)

// LookPathFunc resolves an executable name.
type LookPathFunc func(file string) (string, error)

// Inspector validates a configuration for setup.
type Inspector struct {
	logger   ports.Logger
	version  VersionFunc
	lookPath LookPathFunc
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithVersionFunc replaces how executables are asked for their version.
func WithVersionFunc(fn VersionFunc) Option {
	return func(i *Inspector) {
		i.version = fn
	}
}

// WithLookPath replaces how the interpreter is resolved.
func WithLookPath(fn LookPathFunc) Option {
	return func(i *Inspector) {
		i.lookPath = fn
	}
}

// NewInspector creates an Inspector that runs real executables.
func NewInspector(logger ports.Logger, opts ...Option) *Inspector {
	i := &Inspector{
		logger:   logger,
		version:  runVersion,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func runVersion(ctx context.Context, exe string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()
	//nolint:gosec // G204: executable comes from the located installation
	return exec.CommandContext(ctx, exe, "--version").CombinedOutput()
}

// Request holds the paths given to setup. Empty paths keep the current
// configuration.
type Request struct {
	PrimaryPath   string
	SecondaryPath string
}

// Result is the outcome of setup.
type Result struct {
	Config *domain.Config
	// Reasons explains why the live probe stays disabled. Empty means enabled.
	Reasons []string
}

// Setup locates both applications starting from cfg (or the defaults) and
// the request, then enables the live probe when its libraries are usable.
// An application that cannot be located is an error.
func (i *Inspector) Setup(ctx context.Context, cfg *domain.Config, req Request) (*Result, error) {
	next := domain.NewDefaultConfig()
	if cfg != nil {
		copied := *cfg
		next = &copied
	}

	primaryFrom := req.PrimaryPath
	if primaryFrom == "" {
		primaryFrom = next.Primary.Dir
	}
	primaryDir, err := LocatePrimary(primaryFrom)
	if err != nil {
		return nil, err
	}
	next.Primary.Dir = primaryDir
	next.Primary.Executable = domain.PrimaryExecutable
	i.logger.Info(fmt.Sprintf("found %s in %s", domain.DefaultPrimaryName, primaryDir))

	secondaryFrom := req.SecondaryPath
	if secondaryFrom == "" {
		secondaryFrom = next.Secondary.Dir
	}
	secondaryDir, version, err := LocateSecondary(secondaryFrom)
	if err != nil {
		return nil, err
	}
	next.Secondary.Dir = secondaryDir
	next.Secondary.Version = version.String()
	next.Secondary.Executable = domain.SecondaryExecutable(next.Secondary.Version)
	i.logger.Info(fmt.Sprintf("found %s %s in %s", domain.DefaultSecondaryName, version, secondaryDir))

	if next.OverrideWait <= 0 {
		next.OverrideWait = domain.DefaultOverrideWait
	}

	reasons := i.ScriptingReasons(ctx, next)
	next.UseLiveProbe = len(reasons) == 0
	return &Result{Config: next, Reasons: reasons}, nil
}

// ScriptingReasons lists why the live probe cannot run with cfg.
func (i *Inspector) ScriptingReasons(ctx context.Context, cfg *domain.Config) []string {
	var reasons []string

	if reason := i.checkInterpreter(ctx, cfg.Interpreter()); reason != "" {
		reasons = append(reasons, reason)
	}

	exe := cfg.Primary.ExecutablePath()
	out, err := i.version(ctx, exe)
	v, ok := ParseVersion(string(out))
	switch {
	case err != nil || !ok:
		reasons = append(reasons, fmt.Sprintf("could not read the %s version", domain.DefaultPrimaryName))
	case !v.AtLeast(MinPrimaryVersion):
		reasons = append(reasons, fmt.Sprintf("%s %s or newer is required, found %s",
			domain.DefaultPrimaryName, MinPrimaryVersion, v))
	}
	lib := filepath.Join(cfg.Primary.ScriptingLibPath(), domain.PrimaryScriptingModule+".py")
	if !exists(lib) {
		reasons = append(reasons, fmt.Sprintf("%s scripting library not found at %s", domain.DefaultPrimaryName, lib))
	}

	sv, ok := ParseVersion(cfg.Secondary.Version)
	if !ok || !sv.AtLeast(MinSecondaryVersion) {
		reasons = append(reasons, fmt.Sprintf("%s %s or newer is required, found %q",
			domain.DefaultSecondaryName, MinSecondaryVersion, cfg.Secondary.Version))
	}
	lib = filepath.Join(cfg.Secondary.ScriptingLibPath(), domain.SecondaryScriptingModule(cfg.Secondary.Version)+".py")
	if !exists(lib) {
		reasons = append(reasons, fmt.Sprintf("%s scripting library not found at %s", domain.DefaultSecondaryName, lib))
	}

	for _, r := range reasons {
		i.logger.Warn("live probe unavailable: " + r)
	}
	return reasons
}

func (i *Inspector) checkInterpreter(ctx context.Context, name string) string {
	path, err := i.lookPath(name)
	if err != nil {
		return fmt.Sprintf("interpreter %q not found", name)
	}
	out, err := i.version(ctx, path)
	v, ok := ParseVersion(string(out))
	if err != nil || !ok {
		return fmt.Sprintf("could not read the version of %s", path)
	}
	if !v.SameMinor(InterpreterVersion) {
		return fmt.Sprintf("interpreter must be Python %d.%d, found %s",
			InterpreterVersion[0], InterpreterVersion[1], v)
	}
	return ""
}
