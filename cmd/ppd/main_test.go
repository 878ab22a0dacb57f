package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/adapters/install"
	"go.trai.ch/ppd/internal/adapters/telemetry"
	"go.trai.ch/ppd/internal/app"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports/mocks"
	"go.trai.ch/ppd/internal/engine/decision"
	"go.uber.org/mock/gomock"
)

type stubInstaller struct {
	err error
}

func (s stubInstaller) Setup(context.Context, *domain.Config, install.Request) (*install.Result, error) {
	return nil, s.err
}

type harness struct {
	configs *mocks.MockConfigStore
	history *mocks.MockHistoryStore
	journal *mocks.MockJournal
	logger  *mocks.MockLogger
	app     *app.App
}

func newHarness(t *testing.T, installErr error) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		configs: mocks.NewMockConfigStore(ctrl),
		history: mocks.NewMockHistoryStore(ctrl),
		journal: mocks.NewMockJournal(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Wait().Return(nil).AnyTimes()

	engine := decision.New(h.history, mocks.NewMockSignatureChecker(ctrl), prober,
		mocks.NewMockLauncher(ctrl), h.journal, h.logger, telemetry.NewNoOpTracer())
	h.app = app.New(engine, h.configs, h.history, h.journal, stubInstaller{err: installErr}, h.logger).
		WithOutput(io.Discard, io.Discard)
	return h
}

func (h *harness) provider(cleaned *bool) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: h.app, Logger: h.logger}, func() {
			if cleaned != nil {
				*cleaned = true
			}
		}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t, nil)
	cleaned := false

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), h.provider(&cleaned))
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned, "cleanup must run on exit")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ConfigMissingHint verifies that a failed automatic setup prints a remediation hint.
func TestRun_ConfigMissingHint(t *testing.T) {
	h := newHarness(t, domain.ErrExecutableNotFound)
	h.configs.EXPECT().Load().Return(nil, nil).Times(2)
	h.logger.EXPECT().Error(gomock.Any())

	file := filepath.Join(t.TempDir(), "case.sav")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--ci", file}, stderr, h.provider(nil))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Hint: run 'ppd setup'")
}

// TestRun_JournalError verifies that an execution failure is logged and returns 1.
func TestRun_JournalError(t *testing.T) {
	h := newHarness(t, nil)
	h.journal.EXPECT().Recent(gomock.Any(), domain.DefaultJournalLimit).Return(nil, errors.New("disk full"))
	h.logger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"journal"}, stderr, h.provider(nil))

	assert.Equal(t, 1, exitCode)
	assert.NotContains(t, stderr.String(), "Hint:")
}

// TestRun_Signal verifies that a cancelled context ends the run without logging an error.
func TestRun_Signal(t *testing.T) {
	h := newHarness(t, nil)
	blockCh := make(chan struct{})

	h.journal.EXPECT().Recent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ int) ([]domain.JournalEntry, error) {
			select {
			case <-ctx.Done():
				close(blockCh)
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return nil, errors.New("timeout in mock")
			}
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"journal"}, io.Discard, h.provider(nil))
	}()

	// Wait a bit to ensure run() reaches Recent()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case ret := <-errCh:
		assert.Equal(t, 130, ret)
		<-blockCh
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}

func TestRemediation(t *testing.T) {
	assert.Contains(t, remediation(errors.Join(domain.ErrConfigMissing, errors.New("x"))), "ppd setup")
	assert.Contains(t, remediation(errors.New("wrapped: "+domain.ErrLaunchFailed.Error())), "--with")
	assert.Empty(t, remediation(errors.New("something else")))
}
