// Package config reads and writes the deployment configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.ConfigStore over a YAML file.
// Values from the environment (PPD_AUTO_EXECUTE, PPD_PROBE_TIMEOUT, ...)
// take precedence over the file.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration. It returns nil, nil when no file exists;
// defaults are never synthesised here.
func (s *Store) Load() (*domain.Config, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, s.readErr(err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, s.readErr(err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, s.readErr(err)
	}

	var file Configfile
	if err := v.Unmarshal(&file); err != nil {
		return nil, s.readErr(err)
	}

	cfg, err := file.toDomain()
	if err != nil {
		return nil, s.readErr(err)
	}
	return cfg, nil
}

// Save writes the whole configuration file.
func (s *Store) Save(cfg *domain.Config) error {
	data, err := yaml.Marshal(fromDomain(cfg))
	if err != nil {
		return s.writeErr(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return s.writeErr(err)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return s.writeErr(err)
	}
	return nil
}

func (s *Store) readErr(err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", s.path)
}

func (s *Store) writeErr(err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", s.path)
}
