// Package launcher starts the chosen application as an independent process.
package launcher

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.Launcher.
type Launcher struct {
	logger ports.Logger
}

// New creates a Launcher. logger may be nil.
func New(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch starts program with file as its only argument and the file's
// directory as working directory. It returns once the process has started;
// the child is reaped in the background and never waited on by the caller.
func (l *Launcher) Launch(ctx context.Context, program domain.Program, file string, cfg *domain.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := Resolve(program, cfg)
	if err != nil {
		return err
	}

	cmd := command(target, file)
	cmd.Dir = filepath.Dir(file)

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "command", target)
	}

	if l.logger != nil {
		l.logger.Info(fmt.Sprintf("started %s (pid %d)", filepath.Base(target), cmd.Process.Pid))
	}

	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Resolve returns the executable or shortcut that runs program.
func Resolve(program domain.Program, cfg *domain.Config) (string, error) {
	switch program.Kind {
	case domain.KindOther:
		return program.Command, nil
	case domain.KindPrimary, domain.KindSecondary:
		if cfg == nil {
			return "", zerr.With(domain.ErrAppNotConfigured, "app", program.String())
		}
		app, _ := cfg.App(program)
		if !app.Located() {
			return "", zerr.With(domain.ErrAppNotConfigured, "app", program.String())
		}
		return app.ExecutablePath(), nil
	default:
		return "", domain.ErrNoProgram
	}
}
