package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/adapters/logger"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncoloured output to a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name string
		log  func(*logger.Logger)
	}{
		{
			name: "info_opening",
			log:  func(l *logger.Logger) { l.Info("opening /data/case.sav with PSLF") },
		},
		{
			name: "warn_probe",
			log:  func(l *logger.Logger) { l.Warn("probe secondary: crashed") },
		},
		{
			name: "error_launch",
			log: func(l *logger.Logger) {
				l.Error(errors.Join(
					domain.ErrLaunchFailed,
					zerr.With(errors.New(`exec: "Pslf.exe": file does not exist`), "program", "primary"),
				))
			},
		},
		{
			name: "error_unreadable",
			log: func(l *logger.Logger) {
				err := zerr.With(zerr.Wrap(errors.New("permission denied"), domain.ErrFileUnreadable.Error()), "path", "/data/case.sav")
				l.Error(err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("probe primary: matched")
	lg.Error(domain.ErrProbeWorkerFailed)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "probe primary: matched", info["msg"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failed))
	assert.Equal(t, "ERROR", failed["level"])
	assert.Equal(t, "probe worker failed", failed["error"])
}

func TestLogger_SetOutputKeepsJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	var next bytes.Buffer
	lg.SetOutput(&next)
	lg.Warn("journal unavailable")

	assert.True(t, json.Valid(bytes.TrimSpace(next.Bytes())))
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple"),
			want: []logger.ErrorEntry{{Message: "simple"}},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata on unnamed link moves to the cause",
			err:  zerr.With(errors.New("disk full"), "file", "history.json"),
			want: []logger.ErrorEntry{
				{Message: "disk full", Metadata: map[string]any{"file": "history.json"}},
			},
		},
		{
			name: "joined branches",
			err:  errors.Join(domain.ErrPersistenceFailed, errors.New("read-only file system")),
			want: []logger.ErrorEntry{
				{Message: "failed to persist choice", Metadata: map[string]any{}},
				{Message: "read-only file system"},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "no program chosen"}},
			want:    "Error: no program chosen",
		},
		{
			name:    "cause with multiline message",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": 1},
			}},
			want: "Error: error\n       alpha: 1\n       zebra: z",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("tier", "probe")}).
		WithGroup("worker")
	slog.New(h).Info("report", slog.String("app", "secondary"), slog.Group("exit", slog.Int("code", 1)))

	assert.Equal(t, "report tier=probe worker.app=secondary worker.exit.code=1\n", buf.String())
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})).Debug("hidden")
	assert.Empty(t, buf.String())
}
