package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfigAndResolveRelativePasswordFile(t *testing.T) {
	tmp := t.TempDir()
	passwordPath := filepath.Join(tmp, "password.txt")
	if err := os.WriteFile(passwordPath, []byte("correct horse battery staple\n"), 0o600); err != nil {
		t.Fatalf("write password file: %v", err)
	}

	cfgPath := filepath.Join(tmp, "config.yaml")
	cfgYAML := `
kef:
  default_version: 21
  default_iterations: 100000
runtime:
  password_file: "password.txt"
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Runtime.PasswordFile != passwordPath {
		t.Fatalf("got %q, want %q", cfg.Runtime.PasswordFile, passwordPath)
	}
	if *cfg.KEF.DefaultVersion != 21 {
		t.Fatalf("got version %d, want 21", *cfg.KEF.DefaultVersion)
	}
}

func TestValidateRejectsOutOfRangeVersion(t *testing.T) {
	v := 99
	iters := 10000
	cfg := Config{KEF: KEFConfig{DefaultVersion: &v, DefaultIterations: &iters}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for out-of-range version")
	}
}

func TestValidateRequiresIterations(t *testing.T) {
	v := 0
	cfg := Config{KEF: KEFConfig{DefaultVersion: &v}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing iterations")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")
	cfgYAML := `
kef:
  default_version: 0
  default_iterations: 10000
  bogus_field: true
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
