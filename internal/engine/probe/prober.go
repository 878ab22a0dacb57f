// Package probe opens a file through both applications in isolated worker
// processes and reports which one accepted it.
package probe

import (
	"context"
	"fmt"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var probedApps = [...]domain.Program{domain.Primary, domain.Secondary}

// Prober implements ports.Prober.
type Prober struct {
	factory ports.WorkerFactory
	logger  ports.Logger
	workers errgroup.Group
}

// New creates a Prober that builds workers with factory.
func New(factory ports.WorkerFactory, logger ports.Logger) *Prober {
	return &Prober{
		factory: factory,
		logger:  logger,
	}
}

// Probe starts one worker per application and returns the first that loads
// the file. It returns Unknown once both have reported otherwise, or at once
// when either application is not configured. Workers keep running after an
// early answer until they exit or time out; Wait joins them.
func (p *Prober) Probe(ctx context.Context, file string, cfg *domain.Config) domain.Program {
	if cfg == nil || !cfg.Primary.Located() || !cfg.Secondary.Located() {
		return domain.Unknown
	}

	results := make(chan domain.WorkerReport, len(probedApps))
	for _, app := range probedApps {
		p.workers.Go(func() error {
			supervise(ctx, p.factory, app, file, cfg, results)
			return nil
		})
	}

	for range probedApps {
		select {
		case report := <-results:
			p.logReport(report)
			if report.Positive() {
				return report.App
			}
		case <-ctx.Done():
			return domain.Unknown
		}
	}
	return domain.Unknown
}

// Wait blocks until every worker started by Probe has exited.
func (p *Prober) Wait() error {
	return p.workers.Wait()
}

func (p *Prober) logReport(r domain.WorkerReport) {
	if p.logger == nil {
		return
	}
	if r.Err != nil {
		p.logger.Warn(fmt.Sprintf("probe %s: %s: %v", r.App, r.Outcome, r.Err))
		return
	}
	p.logger.Info(fmt.Sprintf("probe %s: %s", r.App, r.Outcome))
}
