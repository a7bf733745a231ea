// Package config provides the configuration loader for advent.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "advent.yaml"

// supportedVersion is the only advent.yaml version this loader understands.
const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and merges it over the defaults.
// A missing file yields the default configuration.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Adventfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		err := zerr.Wrap(domain.ErrUnsupportedConfigVersion, "failed to load config")
		return nil, zerr.With(zerr.With(err, "version", file.Version), "path", path)
	}

	if file.Inputs != "" {
		if !strings.Contains(file.Inputs, domain.DayPlaceholder) {
			l.logger.Warn("input pattern has no day placeholder", "inputs", file.Inputs)
		}
		cfg.Inputs = file.Inputs
	}
	if file.Cache != "" {
		cfg.Cache = file.Cache
	}
	if file.Jobs < 0 {
		return nil, zerr.With(zerr.New("jobs must not be negative"), "jobs", file.Jobs)
	}
	if file.Jobs > 0 {
		cfg.Jobs = file.Jobs
	}

	return &cfg, nil
}
