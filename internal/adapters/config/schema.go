package config

import (
	"math"
	"strconv"
	"time"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
)

// Configfile is the on-disk shape of config.yaml.
// Durations are strings such as "475ms" so the file stays hand-editable.
type Configfile struct {
	Primary      AppDTO   `yaml:"primary" mapstructure:"primary"`
	Secondary    AppDTO   `yaml:"secondary" mapstructure:"secondary"`
	AutoExecute  bool     `yaml:"auto_execute" mapstructure:"auto_execute"`
	UseLiveProbe bool     `yaml:"use_live_probe" mapstructure:"use_live_probe"`
	OverrideWait string   `yaml:"override_wait,omitempty" mapstructure:"override_wait"`
	OverrideKey  string   `yaml:"override_key,omitempty" mapstructure:"override_key"`
	Probe        ProbeDTO `yaml:"probe" mapstructure:"probe"`
	ShortcutsDir string   `yaml:"shortcuts_dir,omitempty" mapstructure:"shortcuts_dir"`
}

// AppDTO locates one application.
type AppDTO struct {
	Name         string `yaml:"name,omitempty" mapstructure:"name"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Executable   string `yaml:"executable" mapstructure:"executable"`
	ScriptingLib string `yaml:"scripting_lib" mapstructure:"scripting_lib"`
	Version      string `yaml:"version,omitempty" mapstructure:"version"`
}

// ProbeDTO tunes the live probe.
type ProbeDTO struct {
	Interpreter string `yaml:"interpreter,omitempty" mapstructure:"interpreter"`
	Timeout     string `yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// keys lists every setting so environment overrides apply even when the
// file omits them.
var keys = []string{
	"primary.name", "primary.dir", "primary.executable", "primary.scripting_lib", "primary.version",
	"secondary.name", "secondary.dir", "secondary.executable", "secondary.scripting_lib", "secondary.version",
	"auto_execute", "use_live_probe", "override_wait", "override_key",
	"probe.interpreter", "probe.timeout",
	"shortcuts_dir",
}

func (f *Configfile) toDomain() (*domain.Config, error) {
	wait, err := parseDuration("override_wait", f.OverrideWait)
	if err != nil {
		return nil, err
	}
	timeout, err := parseDuration("probe.timeout", f.Probe.Timeout)
	if err != nil {
		return nil, err
	}

	return &domain.Config{
		Primary:      f.Primary.toDomain(),
		Secondary:    f.Secondary.toDomain(),
		AutoExecute:  f.AutoExecute,
		UseLiveProbe: f.UseLiveProbe,
		OverrideWait: wait,
		OverrideKey:  f.OverrideKey,
		Probe: domain.ProbeConfig{
			Interpreter: f.Probe.Interpreter,
			Timeout:     timeout,
		},
		ShortcutsDir: f.ShortcutsDir,
	}, nil
}

func (a AppDTO) toDomain() domain.AppConfig {
	return domain.AppConfig(a)
}

func fromDomain(cfg *domain.Config) Configfile {
	return Configfile{
		Primary:      AppDTO(cfg.Primary),
		Secondary:    AppDTO(cfg.Secondary),
		AutoExecute:  cfg.AutoExecute,
		UseLiveProbe: cfg.UseLiveProbe,
		OverrideWait: formatDuration(cfg.OverrideWait),
		OverrideKey:  cfg.OverrideKey,
		Probe: ProbeDTO{
			Interpreter: cfg.Probe.Interpreter,
			Timeout:     formatDuration(cfg.Probe.Timeout),
		},
		ShortcutsDir: cfg.ShortcutsDir,
	}
}

// parseDuration accepts Go duration strings and bare integers as milliseconds.
// An empty value is zero.
func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, zerr.With(zerr.With(zerr.Wrap(err, "invalid duration"), "key", key), "value", s)
	}
	if ms < 0 || ms > math.MaxInt64/int64(time.Millisecond) {
		return 0, zerr.With(zerr.With(zerr.New("invalid duration"), "key", key), "value", s)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
