package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spritelab/internal/anim"
)

const (
	DefaultRows          = anim.DefaultRows
	DefaultCols          = anim.DefaultCols
	DefaultIntervalMS    = 200
	DefaultMagnification = 16
	DefaultTheme         = "mono"
	DefaultDataDir       = ".spritelab"
)

type Config struct {
	Rows          int    `yaml:"rows"`
	Cols          int    `yaml:"cols"`
	IntervalMS    int    `yaml:"interval_ms"`
	Magnification int    `yaml:"magnification"`
	Theme         string `yaml:"theme"`
	DataDir       string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		IntervalMS:    DefaultIntervalMS,
		Magnification: DefaultMagnification,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the editor cannot run with.
func (c *Config) Validate() error {
	if !anim.ValidDim(c.Rows) || !anim.ValidDim(c.Cols) {
		return fmt.Errorf("config: grid %dx%d outside [%d,%d]", c.Rows, c.Cols, anim.MinDim, anim.MaxDim)
	}
	if c.IntervalMS <= 0 {
		return fmt.Errorf("config: interval_ms must be positive, got %d", c.IntervalMS)
	}
	if c.Magnification < 1 {
		return fmt.Errorf("config: magnification must be at least 1, got %d", c.Magnification)
	}
	return nil
}
