// Package config loads cmd/bbqrtool's YAML configuration.
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
	// ValidationFull requires everything needed to split a file into
	// parts.
	ValidationFull ValidationMode = iota
	// ValidationReassembleOnly only requires the output directory,
	// for the reassemble subcommand which reads part strings verbatim.
	ValidationReassembleOnly
)

type Config struct {
	BBQr    BBQrConfig    `yaml:"bbqr"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

type BBQrConfig struct {
	MaxCharsPerQR  *int   `yaml:"max_chars_per_qr"`
	DefaultFileType string `yaml:"default_file_type"`
}

type RuntimeConfig struct {
	// OutputDir is where reassembled or split output is written.
	// Relative paths resolve against the config file's directory.
	OutputDir string `yaml:"output_dir"`
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
	if strings.TrimSpace(c.Runtime.OutputDir) == "" {
		return fmt.Errorf("config.runtime.output_dir is required")
	}

	if mode == ValidationReassembleOnly {
		return nil
	}

	if c.BBQr.MaxCharsPerQR == nil {
		return fmt.Errorf("config.bbqr.max_chars_per_qr is required")
	}
	if *c.BBQr.MaxCharsPerQR < 16 {
		return fmt.Errorf("config.bbqr.max_chars_per_qr must be >= 16")
	}
	switch c.BBQr.DefaultFileType {
	case "P", "T", "J", "U":
	default:
		return fmt.Errorf("config.bbqr.default_file_type must be one of P, T, J, U")
	}
	return nil
}

func (c *Config) resolvePaths(configPath string) {
	configDir := filepath.Dir(configPath)
	c.Runtime.OutputDir = resolvePath(configDir, c.Runtime.OutputDir)
}

func resolvePath(baseDir, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Clean(filepath.Join(baseDir, trimmed))
}
