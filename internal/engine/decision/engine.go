// Package decision runs the history, signature and probe tiers that decide
// which application opens a file.
package decision

import (
	"context"
	"path/filepath"
	"time"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
)

// Engine holds the collaborators shared by every session.
type Engine struct {
	history  ports.HistoryStore
	checker  ports.SignatureChecker
	prober   ports.Prober
	launcher ports.Launcher
	journal  ports.Journal
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates an Engine. journal may be nil.
func New(
	history ports.HistoryStore,
	checker ports.SignatureChecker,
	prober ports.Prober,
	launcher ports.Launcher,
	journal ports.Journal,
	logger ports.Logger,
	tracer ports.Tracer,
) *Engine {
	return &Engine{
		history:  history,
		checker:  checker,
		prober:   prober,
		launcher: launcher,
		journal:  journal,
		logger:   logger,
		tracer:   tracer,
	}
}

// NewSession starts a decision for file. A relative path is made absolute so
// history entries stay keyed by absolute path.
func (e *Engine) NewSession(file string, cfg *domain.Config) *Session {
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}
	return &Session{
		engine: e,
		file:   file,
		cfg:    cfg,
		start:  time.Now(),
		report: domain.Report{
			History:   domain.CheckResult{Tier: domain.TierHistory},
			Signature: domain.CheckResult{Tier: domain.TierSignature},
			Probe:     domain.CheckResult{Tier: domain.TierProbe},
		},
	}
}

// Wait joins every probe worker started by this engine's sessions.
func (e *Engine) Wait() error {
	return e.prober.Wait()
}

// HistoryEntry returns the program currently remembered for file.
func (e *Engine) HistoryEntry(file string) domain.Program {
	return domain.ParseProgram(e.history.Load()[file])
}

func (e *Engine) startSpan(ctx context.Context, tier domain.Tier, file string) (context.Context, ports.Span) {
	return e.tracer.Start(ctx, tier.String(), ports.WithFile(file))
}
