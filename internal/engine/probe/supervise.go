package probe

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/zerr"
)

// supervise runs the worker for app to completion and posts exactly one
// report on out. out must have room for the report; supervise never blocks
// on it. A worker that prints its identity tag is reported Matched at once,
// before it exits.
func supervise(
	ctx context.Context,
	factory ports.WorkerFactory,
	app domain.Program,
	file string,
	cfg *domain.Config,
	out chan<- domain.WorkerReport,
) {
	var once sync.Once
	post := func(outcome domain.ProbeOutcome, err error) {
		once.Do(func() {
			out <- domain.WorkerReport{App: app, Outcome: outcome, Err: err}
		})
	}
	defer zerr.Defer(func(err error) {
		post(domain.OutcomeCrashed, workerFailed(err, app))
	})

	worker, err := factory.NewWorker(app, file, cfg)
	if err != nil {
		post(domain.OutcomeCrashed, workerFailed(err, app))
		return
	}

	wctx, cancel := context.WithTimeout(ctx, cfg.ProbeTimeout())
	defer cancel()

	tag := domain.ProbeIdentityTag(app)
	runErr := worker.Run(wctx, func(line string) {
		if strings.TrimSpace(line) == tag {
			post(domain.OutcomeMatched, nil)
		}
	})

	switch {
	case runErr == nil:
		post(domain.OutcomeNotMatched, nil)
	case ctx.Err() == nil && errors.Is(wctx.Err(), context.DeadlineExceeded):
		post(domain.OutcomeTimedOut, workerFailed(context.DeadlineExceeded, app))
	default:
		post(domain.OutcomeCrashed, workerFailed(runErr, app))
	}
}

func workerFailed(err error, app domain.Program) error {
	return zerr.With(zerr.Wrap(err, domain.ErrProbeWorkerFailed.Error()), "app", app.String())
}
