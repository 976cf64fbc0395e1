package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/nested"
	"github.com/signadot/go-nested/store"

	"github.com/goccy/go-yaml"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FileConfig is the configuration file read with -config. Command line
// options take precedence over it.
type FileConfig struct {
	// Format of documents written, yaml or json.
	Format string `yaml:"format"`
	// Color forces event colors on or off. Unset means color on terminals.
	Color *bool `yaml:"color"`
	// Filter is the default event filter of run and patch.
	Filter string `yaml:"filter"`
	// LooseTruth counts zero, "" and false as missing array elements.
	LooseTruth bool `yaml:"looseTruth"`

	Store *StoreConfig `yaml:"store"`
}

// StoreConfig configures the store used by run -id.
type StoreConfig struct {
	Dir  string `yaml:"dir"`
	JSON bool   `yaml:"json"`
}

// LoadConfig loads a configuration file in YAML format.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

func DefaultConfig() *FileConfig {
	return &FileConfig{
		Format: FormatYAML,
	}
}

// Validate checks the configuration for errors.
func (c *FileConfig) Validate() error {
	var errs []error
	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("format must be %s or %s, got %q", FormatYAML, FormatJSON, c.Format))
	}
	if c.Filter != "" {
		if _, err := event.CompileFilter(c.Filter); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Store != nil && c.Store.Dir == "" {
		errs = append(errs, errors.New("store.dir is required"))
	}
	return errors.Join(errs...)
}

func (c *FileConfig) modelOpts() []nested.ModelOption {
	if c.LooseTruth {
		return []nested.ModelOption{nested.LooseTruth()}
	}
	return nil
}

func (c *FileConfig) openStore() (store.Store, error) {
	if c.Store == nil {
		return nil, errors.New("no store configured")
	}
	d, err := store.OpenDir(c.Store.Dir, c.Store.JSON)
	if err != nil {
		return nil, err
	}
	return d, nil
}
