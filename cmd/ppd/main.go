// Package main is the entry point for ppd.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/cmd/ppd/commands"
	"go.trai.ch/ppd/internal/app"
	"go.trai.ch/ppd/internal/core/domain"
	_ "go.trai.ch/ppd/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, func() {}, err
		}
		return c, func() {
			if cerr := c.App.Close(); cerr != nil {
				c.Logger.Warn("closing usage journal: " + cerr.Error())
			}
		}, nil
	}))
}

// remediations maps sentinel errors to what the user can do about them.
var remediations = []struct {
	err  error
	hint string
}{
	{domain.ErrConfigMissing, "run 'ppd setup' to locate PSLF and PSSE"},
	{domain.ErrConfigReadFailed, "fix or delete the configuration file, then run 'ppd setup'"},
	{domain.ErrExecutableNotFound, "pass the installation directories with 'ppd setup --primary <dir> --secondary <dir>'"},
	{domain.ErrAppNotConfigured, "run 'ppd setup' to locate PSLF and PSSE"},
	{domain.ErrLaunchFailed, "check the application paths with 'ppd setup' or open the file with 'ppd --with <program>'"},
	{domain.ErrPersistenceFailed, "the file was opened but the choice was not remembered; check permissions on the ppd home directory"},
	{domain.ErrShortcutsDirMissing, "set shortcuts_dir in the configuration"},
}

// remediation also matches by message since annotated zerr errors are copies
// of their sentinel.
func remediation(err error) string {
	msg := err.Error()
	for _, r := range remediations {
		if errors.Is(err, r.err) || strings.Contains(msg, r.err.Error()) {
			return r.hint
		}
	}
	return ""
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	jsonLog, _ := components.Logger.(commands.JSONLogger)
	cli := commands.New(components.App, jsonLog)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		components.Logger.Error(err)
		if hint := remediation(err); hint != "" {
			_, _ = fmt.Fprintln(stderr, "Hint: "+hint)
		}
		return 1
	}
	return 0
}
