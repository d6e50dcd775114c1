package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")
	cfgYAML := `
mnemonic:
  default_output_format: "seedqr"
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mnemonic.DefaultOutputFormat != "seedqr" {
		t.Fatalf("got %q", cfg.Mnemonic.DefaultOutputFormat)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := Config{Mnemonic: MnemonicConfig{DefaultOutputFormat: "bogus"}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
