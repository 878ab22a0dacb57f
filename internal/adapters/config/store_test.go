package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/adapters/config"
	"go.trai.ch/ppd/internal/core/domain"
)

func newStore(t *testing.T) *config.Store {
	t.Helper()
	return config.NewStore(filepath.Join(t.TempDir(), "ppd", domain.ConfigFileName))
}

func writeConfig(t *testing.T, s *config.Store, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), domain.DirPerm))
	require.NoError(t, os.WriteFile(s.Path(), []byte(body), domain.FilePerm))
}

func TestStore_LoadMissing(t *testing.T) {
	cfg, err := newStore(t).Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	want := domain.NewDefaultConfig()
	want.Secondary.Version = "35.6.2"
	want.Secondary.Executable = domain.SecondaryExecutable("35.6.2")
	want.UseLiveProbe = true
	want.OverrideKey = " "
	want.ShortcutsDir = "/usr/share/applications"

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveWritesReadableYAML(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(domain.NewDefaultConfig()))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "override_wait: 475ms")
	assert.Contains(t, string(data), "auto_execute: true")
	assert.Contains(t, string(data), "executable: Pslf.exe")
}

func TestStore_EnvironmentOverrides(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(domain.NewDefaultConfig()))

	t.Setenv("PPD_AUTO_EXECUTE", "false")
	t.Setenv("PPD_PROBE_TIMEOUT", "5s")
	t.Setenv("PPD_SECONDARY_DIR", "/opt/psse")

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.False(t, cfg.AutoExecute)
	assert.Equal(t, 5*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, "/opt/psse", cfg.Secondary.Dir)
	assert.Equal(t, domain.DefaultPrimaryDir, cfg.Primary.Dir)
}

func TestStore_Durations(t *testing.T) {
	s := newStore(t)
	writeConfig(t, s, "primary:\n  dir: /opt/pslf\noverride_wait: 300\nprobe:\n  timeout: 1m\n")

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.OverrideWait)
	assert.Equal(t, time.Minute, cfg.Probe.Timeout)
	assert.False(t, cfg.Secondary.Located())
}

func TestStore_InvalidDuration(t *testing.T) {
	s := newStore(t)
	writeConfig(t, s, "override_wait: soon\n")

	cfg, err := s.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestStore_DurationOutOfRange(t *testing.T) {
	for _, v := range []string{"99999999999999999999", "9223372036854775807", "-5"} {
		t.Run(v, func(t *testing.T) {
			s := newStore(t)
			writeConfig(t, s, "override_wait: \""+v+"\"\n")

			cfg, err := s.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "invalid duration")
		})
	}
}

func TestStore_MalformedYAML(t *testing.T) {
	s := newStore(t)
	writeConfig(t, s, "primary: [unclosed\n")

	_, err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}
