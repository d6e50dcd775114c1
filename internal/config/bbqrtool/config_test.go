package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfigAndResolveOutputDir(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")
	cfgYAML := `
bbqr:
  max_chars_per_qr: 1200
  default_file_type: "U"
runtime:
  output_dir: "out"
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(tmp, "out")
	if cfg.Runtime.OutputDir != want {
		t.Fatalf("got %q, want %q", cfg.Runtime.OutputDir, want)
	}
}

func TestValidateRejectsBadFileType(t *testing.T) {
	max := 100
	cfg := Config{
		BBQr:    BBQrConfig{MaxCharsPerQR: &max, DefaultFileType: "X"},
		Runtime: RuntimeConfig{OutputDir: "."},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for invalid file type")
	}
}

func TestValidateReassembleOnlySkipsBBQrFields(t *testing.T) {
	cfg := Config{Runtime: RuntimeConfig{OutputDir: "."}}
	if err := cfg.ValidateWithMode(ValidationReassembleOnly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRequiresOutputDir(t *testing.T) {
	cfg := Config{}
	if err := cfg.ValidateWithMode(ValidationReassembleOnly); err == nil {
		t.Fatalf("expected error for missing output_dir")
	}
}
