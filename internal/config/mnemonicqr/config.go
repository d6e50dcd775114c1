// Package config loads cmd/mnemonicqr's YAML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ValidationMode int

const (
	ValidationFull ValidationMode = iota
)

type Config struct {
	Mnemonic MnemonicConfig `yaml:"mnemonic"`
}

type MnemonicConfig struct {
	// DefaultOutputFormat is the format conversions target when the
	// caller doesn't pick one explicitly: "compact", "seedqr", or
	// "plaintext".
	DefaultOutputFormat string `yaml:"default_output_format"`
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
	if err := cfg.ValidateWithMode(mode); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	return c.ValidateWithMode(ValidationFull)
}

func (c *Config) ValidateWithMode(mode ValidationMode) error {
	switch c.Mnemonic.DefaultOutputFormat {
	case "compact", "seedqr", "plaintext":
	default:
		return fmt.Errorf("config.mnemonic.default_output_format must be one of compact, seedqr, plaintext")
	}
	return nil
}
