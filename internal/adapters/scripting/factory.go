// Package scripting runs probe workers: a Python interpreter executing an
// embedded script against one application's scripting library.
package scripting

import (
	"embed"
	"os"
	"strings"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed scripts/*.py
var scripts embed.FS

// Environment passed to probe scripts.
const (
	EnvProbeTag        = "PPD_PROBE_TAG"
	EnvAppExecutable   = "PPD_APP_EXECUTABLE"
	EnvBootstrapModule = "PPD_BOOTSTRAP_MODULE"
	EnvPythonPath      = "PYTHONPATH"
)

// Factory implements ports.WorkerFactory.
type Factory struct {
	logger  ports.Logger
	sources map[domain.ProgramKind][]byte
}

// Option configures a Factory.
type Option func(*Factory)

// WithScript replaces the script run for one application.
func WithScript(kind domain.ProgramKind, source []byte) Option {
	return func(f *Factory) {
		f.sources[kind] = source
	}
}

// NewFactory creates a Factory using the embedded scripts.
func NewFactory(logger ports.Logger, opts ...Option) *Factory {
	f := &Factory{
		logger:  logger,
		sources: make(map[domain.ProgramKind][]byte, 2),
	}
	for kind, name := range map[domain.ProgramKind]string{
		domain.KindPrimary:   "scripts/primary.py",
		domain.KindSecondary: "scripts/secondary.py",
	} {
		// Embedded at build time; a read error is impossible.
		f.sources[kind], _ = scripts.ReadFile(name)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewWorker prepares a worker probing file with app. Nothing is started.
func (f *Factory) NewWorker(app domain.Program, file string, cfg *domain.Config) (ports.Worker, error) {
	if cfg == nil {
		return nil, zerr.With(domain.ErrAppNotConfigured, "app", app.String())
	}
	appCfg, ok := cfg.App(app)
	if !ok || !appCfg.Located() {
		return nil, zerr.With(domain.ErrAppNotConfigured, "app", app.String())
	}
	source, ok := f.sources[app.Kind]
	if !ok || len(source) == 0 {
		return nil, zerr.With(zerr.New("no probe script"), "app", app.String())
	}

	return &Worker{
		app:         app,
		interpreter: cfg.Interpreter(),
		file:        file,
		dir:         appCfg.Dir,
		script:      source,
		env:         workerEnv(app, appCfg),
		logger:      f.logger,
	}, nil
}

// workerEnv extends the current environment with the library path and the
// values the script reads. Everything is passed by value per worker.
func workerEnv(app domain.Program, appCfg domain.AppConfig) []string {
	pythonPath := appCfg.ScriptingLibPath()
	if existing := os.Getenv(EnvPythonPath); existing != "" {
		pythonPath += string(os.PathListSeparator) + existing
	}

	env := make([]string, 0, len(os.Environ())+4)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, EnvPythonPath+"=") {
			env = append(env, kv)
		}
	}
	env = append(env,
		EnvPythonPath+"="+pythonPath,
		EnvProbeTag+"="+domain.ProbeIdentityTag(app),
		EnvAppExecutable+"="+appCfg.ExecutablePath(),
	)
	if app.Kind == domain.KindSecondary {
		env = append(env, EnvBootstrapModule+"="+domain.SecondaryScriptingModule(appCfg.Version))
	}
	return env
}
