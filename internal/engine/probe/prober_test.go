package probe_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/ppd/internal/core/ports/mocks"
	"go.trai.ch/ppd/internal/engine/probe"
	"go.uber.org/mock/gomock"
)

// scriptedWorker runs a function in place of a real process.
type scriptedWorker func(ctx context.Context, onLine func(string)) error

func (w scriptedWorker) Run(ctx context.Context, onLine func(string)) error {
	return w(ctx, onLine)
}

// scriptedFactory hands out one scripted worker per application.
type scriptedFactory map[domain.ProgramKind]scriptedWorker

func (f scriptedFactory) NewWorker(app domain.Program, _ string, _ *domain.Config) (ports.Worker, error) {
	w, ok := f[app.Kind]
	if !ok {
		return nil, errors.New("no interpreter")
	}
	return w, nil
}

func matchAfter(d time.Duration, app domain.Program) scriptedWorker {
	return func(ctx context.Context, onLine func(string)) error {
		if d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		onLine("loading case")
		onLine(domain.ProbeIdentityTag(app) + "\r")
		return nil
	}
}

func rejectAfter(d time.Duration) scriptedWorker {
	return func(ctx context.Context, _ func(string)) error {
		select {
		case <-time.After(d):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func hang() scriptedWorker {
	return func(ctx context.Context, _ func(string)) error {
		<-ctx.Done()
		return ctx.Err()
	}
}

func probeConfig() *domain.Config {
	cfg := domain.NewDefaultConfig()
	cfg.UseLiveProbe = true
	cfg.Probe.Timeout = 30 * time.Second
	return cfg
}

func TestProbe_FirstPositiveShortCircuits(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := probe.New(scriptedFactory{
			domain.KindPrimary:   hang(),
			domain.KindSecondary: matchAfter(0, domain.Secondary),
		}, nil)

		start := time.Now()
		got := p.Probe(t.Context(), "case.sav", probeConfig())

		assert.Equal(t, domain.Secondary, got)
		assert.Zero(t, time.Since(start), "probe must not wait for the hanging worker")

		// The hanging worker is still joined, bounded by the probe timeout.
		require.NoError(t, p.Wait())
		assert.Equal(t, 30*time.Second, time.Since(start))
	})
}

func TestProbe_BothNegativeWaitsForBoth(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := probe.New(scriptedFactory{
			domain.KindPrimary:   rejectAfter(time.Second),
			domain.KindSecondary: rejectAfter(5 * time.Second),
		}, nil)

		start := time.Now()
		got := p.Probe(t.Context(), "case.sav", probeConfig())

		assert.Equal(t, domain.Unknown, got)
		assert.Equal(t, 5*time.Second, time.Since(start))
		require.NoError(t, p.Wait())
	})
}

func TestProbe_LaterPositiveIgnored(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := probe.New(scriptedFactory{
			domain.KindPrimary:   matchAfter(2*time.Second, domain.Primary),
			domain.KindSecondary: matchAfter(3*time.Second, domain.Secondary),
		}, nil)

		got := p.Probe(t.Context(), "case.sav", probeConfig())
		assert.Equal(t, domain.Primary, got)
		require.NoError(t, p.Wait())
	})
}

func TestProbe_TimeoutDegradesToUnknown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cfg := probeConfig()
		cfg.Probe.Timeout = 2 * time.Second
		p := probe.New(scriptedFactory{
			domain.KindPrimary:   hang(),
			domain.KindSecondary: hang(),
		}, nil)

		start := time.Now()
		got := p.Probe(t.Context(), "case.sav", cfg)

		assert.Equal(t, domain.Unknown, got)
		assert.Equal(t, 2*time.Second, time.Since(start))
		require.NoError(t, p.Wait())
	})
}

func TestProbe_StartFailureDoesNotHang(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := probe.New(scriptedFactory{
			domain.KindSecondary: rejectAfter(time.Second),
		}, nil)

		got := p.Probe(t.Context(), "case.sav", probeConfig())
		assert.Equal(t, domain.Unknown, got)
		require.NoError(t, p.Wait())
	})
}

func TestProbe_StartFailureOtherMatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := probe.New(scriptedFactory{
			domain.KindPrimary: matchAfter(time.Second, domain.Primary),
		}, nil)

		got := p.Probe(t.Context(), "case.sav", probeConfig())
		assert.Equal(t, domain.Primary, got)
		require.NoError(t, p.Wait())
	})
}

func TestProbe_MissingConfigSpawnsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockWorkerFactory(ctrl)
	factory.EXPECT().NewWorker(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	p := probe.New(factory, nil)

	cfg := probeConfig()
	cfg.Secondary.Dir = ""
	assert.Equal(t, domain.Unknown, p.Probe(context.Background(), "case.sav", cfg))
	assert.Equal(t, domain.Unknown, p.Probe(context.Background(), "case.sav", nil))
	require.NoError(t, p.Wait())
}

func TestProbe_LogsEachReport(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info("probe primary: not matched")
		log.EXPECT().Warn(gomock.Any())

		p := probe.New(scriptedFactory{
			domain.KindPrimary: rejectAfter(time.Second),
		}, log)

		assert.Equal(t, domain.Unknown, p.Probe(t.Context(), "case.sav", probeConfig()))
		require.NoError(t, p.Wait())
	})
}

func TestProbe_CancelledContext(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		p := probe.New(scriptedFactory{
			domain.KindPrimary:   hang(),
			domain.KindSecondary: hang(),
		}, nil)

		go func() {
			time.Sleep(time.Second)
			cancel()
		}()

		assert.Equal(t, domain.Unknown, p.Probe(ctx, "case.sav", probeConfig()))
		require.NoError(t, p.Wait())
	})
}
