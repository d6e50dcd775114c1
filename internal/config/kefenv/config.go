// Package config loads cmd/kefenv's YAML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type ValidationMode int

const (
	// ValidationFull requires the KEF defaults. It checks nothing beyond
	// ValidationMinimal: runtime.password_file stays optional.
	ValidationFull ValidationMode = iota
	// ValidationMinimal only requires the KEF defaults.
	ValidationMinimal
)

type Config struct {
	KEF     KEFConfig     `yaml:"kef"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

type KEFConfig struct {
	DefaultVersion    *int `yaml:"default_version"`
	DefaultIterations *int `yaml:"default_iterations"`
}

type RuntimeConfig struct {
	// PasswordFile, if set, is read for the envelope password instead of
	// prompting on the terminal. Relative paths resolve against the
	// config file's directory.
	PasswordFile string `yaml:"password_file"`
}

func Load(path string) (*Config, error) {
	return LoadWithMode(path, ValidationFull)
}

func LoadWithMode(path string, mode ValidationMode) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.resolvePaths(path)
	if err := cfg.ValidateWithMode(mode); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	return c.ValidateWithMode(ValidationFull)
}

func (c *Config) ValidateWithMode(mode ValidationMode) error {
	if c.KEF.DefaultVersion == nil {
		return fmt.Errorf("config.kef.default_version is required")
	}
	if *c.KEF.DefaultVersion < 0 || *c.KEF.DefaultVersion > 21 {
		return fmt.Errorf("config.kef.default_version must be 0..21")
	}
	if c.KEF.DefaultIterations == nil {
		return fmt.Errorf("config.kef.default_iterations is required")
	}
	if *c.KEF.DefaultIterations < 1 {
		return fmt.Errorf("config.kef.default_iterations must be >= 1")
	}

	switch mode {
	case ValidationMinimal:
		return nil
	case ValidationFull:
		return nil
	default:
		return fmt.Errorf("unsupported validation mode: %d", mode)
	}
}

func (c *Config) resolvePaths(configPath string) {
	configDir := filepath.Dir(configPath)
	c.Runtime.PasswordFile = resolvePath(configDir, c.Runtime.PasswordFile)
}

func resolvePath(baseDir, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Clean(filepath.Join(baseDir, trimmed))
}
