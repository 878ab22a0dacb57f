// Package app implements the application layer for ppd.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ppd/internal/adapters/detector"
	"go.trai.ch/ppd/internal/adapters/install"
	"go.trai.ch/ppd/internal/adapters/linear"
	"go.trai.ch/ppd/internal/adapters/shortcuts"
	"go.trai.ch/ppd/internal/adapters/telemetry"
	"go.trai.ch/ppd/internal/adapters/tui"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/ppd/internal/engine/decision"
	"go.trai.ch/ppd/internal/engine/gate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Installer validates application directories for setup.
type Installer interface {
	Setup(ctx context.Context, cfg *domain.Config, req install.Request) (*install.Result, error)
}

// redirectable is implemented by loggers that can write somewhere else while
// the terminal UI owns the screen.
type redirectable interface {
	SetOutput(w io.Writer)
}

// App represents the main application logic.
type App struct {
	engine    *decision.Engine
	configs   ports.ConfigStore
	history   ports.HistoryStore
	journal   ports.Journal
	installer Installer
	logger    ports.Logger

	home       string
	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	detect     func() detector.OutputMode
}

// New creates a new App instance.
func New(
	engine *decision.Engine,
	configs ports.ConfigStore,
	history ports.HistoryStore,
	journal ports.Journal,
	installer Installer,
	log ports.Logger,
) *App {
	return &App{
		engine:    engine,
		configs:   configs,
		history:   history,
		journal:   journal,
		installer: installer,
		logger:    log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		detect:    detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput replaces the streams used by the headless renderer and listings.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithHome sets the directory the TUI log file is written to.
func (a *App) WithHome(home string) *App {
	a.home = home
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// With skips every tier and opens the file with this program.
	With string
	// Manual forbids auto-execution for this run.
	Manual     bool
	OutputMode string
}

// Run decides which application opens file and opens it. A missing
// configuration runs setup with the default locations first.
func (a *App) Run(ctx context.Context, file string, opts RunOptions) error {
	cfg, err := a.loadOrSetup(ctx)
	if err != nil {
		return err
	}

	// The probe workers are killed when Run returns and joined before exit.
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		if werr := a.engine.Wait(); werr != nil {
			a.logger.Warn(fmt.Sprintf("probe shutdown: %v", werr))
		}
	}()

	session := a.engine.NewSession(file, cfg)
	mode := detector.ResolveMode(a.detect(), opts.OutputMode)

	if opts.With != "" {
		return a.runWith(ctx, session, opts.With)
	}

	auto := cfg.AutoExecute && !opts.Manual
	if _, statErr := os.Stat(session.File()); statErr != nil && auto {
		// An unreadable file never auto-executes; the tiers still report why.
		a.logger.Warn(fmt.Sprintf("%s: %v, choose manually", domain.ErrFileUnreadable.Error(), statErr))
		auto = false
	}
	if mode == detector.ModeTUI {
		return a.runInteractive(ctx, session, auto)
	}
	return a.runHeadless(ctx, session, auto)
}

func (a *App) loadOrSetup(ctx context.Context) (*domain.Config, error) {
	cfg, err := a.configs.Load()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	a.logger.Warn("no configuration found, running setup with default locations")
	if err := a.Setup(ctx, SetupOptions{}); err != nil {
		return nil, errors.Join(domain.ErrConfigMissing, err)
	}
	cfg, err = a.configs.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrConfigMissing
	}
	return cfg, nil
}

func (a *App) runWith(ctx context.Context, session *decision.Session, with string) error {
	v, err := session.Choose(ctx, domain.ParseProgram(with))
	if v != nil {
		linear.NewRenderer(a.stdout, a.stderr).OnVerdict(v, session.Config())
	}
	return err
}

// runHeadless runs every tier on an engine goroutine while the linear
// renderer prints tier spans as they complete.
func (a *App) runHeadless(ctx context.Context, session *decision.Session, auto bool) error {
	renderer := linear.NewRenderer(a.stdout, a.stderr)
	tp := setupOTel(telemetry.NewBridge(renderer))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	g, gctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		return renderer.Start(gctx)
	})

	// Engine Routine
	g.Go(func() (err error) {
		defer func() {
			_ = renderer.Stop()
		}()
		defer zerr.Defer(func(perr error) {
			err = zerr.Wrap(perr, "decision engine panicked")
		})

		v, runErr := session.Run(gctx, auto)
		if v != nil {
			renderer.OnVerdict(v, session.Config())
		}
		return runErr
	})

	return g.Wait()
}

// runInteractive hands the session to the terminal UI. Logs go to the log
// file under home while the UI owns the terminal.
func (a *App) runInteractive(ctx context.Context, session *decision.Session, auto bool) error {
	restore := a.redirectLogs()
	defer restore()

	// The UI records the verdict from its update loop, so the database must
	// be ready before it starts.
	if err := a.journal.Open(ctx); err != nil {
		a.logger.Warn(fmt.Sprintf("usage journal unavailable: %v", err))
	}

	g := gate.Bypassed()
	if auto {
		g = gate.New(session.Config().OverrideWait)
	}
	defer g.Close()

	var picker ports.ProgramPicker
	if p, err := shortcuts.ForConfig(session.Config()); err == nil {
		picker = p
	} else {
		a.logger.Warn(fmt.Sprintf("program picker unavailable: %v", err))
	}

	model := tui.NewModel(ctx, session, g, picker)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)

	final, err := tui.Run(model, opts...)
	if err != nil {
		return err
	}

	restore()
	if v := final.Verdict(); v != nil {
		linear.NewRenderer(a.stdout, a.stderr).OnVerdict(v, session.Config())
	}
	return final.Err()
}

// redirectLogs points the logger at the log file and returns a function
// restoring stderr. Restoring twice is harmless.
func (a *App) redirectLogs() func() {
	r, ok := a.logger.(redirectable)
	if !ok || a.home == "" {
		return func() {}
	}

	if err := os.MkdirAll(a.home, domain.DirPerm); err != nil {
		return func() {}
	}
	path := filepath.Join(a.home, domain.LogFileName)
	//nolint:gosec // G304: log file under the application home
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.PrivateFilePerm)
	if err != nil {
		return func() {}
	}

	r.SetOutput(f)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		r.SetOutput(nil)
		_ = f.Close()
	}
}

// SetupOptions configuration for the Setup method.
type SetupOptions struct {
	PrimaryPath   string
	SecondaryPath string
	// Manual disables auto-execution in the saved configuration.
	Manual bool
}

// Setup locates both applications, decides whether the live probe can be
// used and saves the configuration.
func (a *App) Setup(ctx context.Context, opts SetupOptions) error {
	current, err := a.configs.Load()
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring unreadable configuration: %v", err))
		current = nil
	}

	res, err := a.installer.Setup(ctx, current, install.Request{
		PrimaryPath:   opts.PrimaryPath,
		SecondaryPath: opts.SecondaryPath,
	})
	if err != nil {
		return zerr.Wrap(err, "setup failed")
	}
	if opts.Manual {
		res.Config.AutoExecute = false
	}

	if err := a.configs.Save(res.Config); err != nil {
		return err
	}

	if len(a.history.Load()) == 0 {
		if err := a.history.Save(map[string]string{}); err != nil {
			a.logger.Warn(fmt.Sprintf("could not create history: %v", err))
		}
	}

	a.logger.Info("configuration written to " + a.configs.Path())
	if res.Config.UseLiveProbe {
		a.logger.Info("live probe enabled")
	} else {
		a.logger.Info("live probe disabled; history and signature checks still apply")
	}
	return nil
}

// History prints the remembered program for every file, sorted by path.
func (a *App) History(_ context.Context) error {
	entries := a.history.Load()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(a.stdout, "no history")
		return nil
	}

	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, p := range paths {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", domain.ParseProgram(entries[p]).DisplayName(nil), p)
	}
	return w.Flush()
}

// Journal prints the most recent decisions, newest first.
func (a *App) Journal(ctx context.Context, limit int) error {
	entries, err := a.journal.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(a.stdout, "no decisions recorded")
		return nil
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		program := e.Program.DisplayName(nil)
		if !e.Program.IsKnown() {
			program = "-"
		}
		status := "launched"
		switch {
		case e.Error != "":
			status = "failed: " + e.Error
		case !e.Launched:
			status = "not launched"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Time.Local().Format(time.DateTime), e.Mode(), e.Tier, program, status, e.File)
	}
	return w.Flush()
}

// Close releases the usage journal.
func (a *App) Close() error {
	return a.journal.Close()
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
	return tp
}
