package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logbook/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "logbook", "config.toml"); resolved != want {
		t.Fatalf("resolved path = %q, want %q", resolved, want)
	}
	if cfg.Logging.Preset != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg.Logging)
	}
	if !cfg.Logging.Active {
		t.Fatal("expected logging active by default")
	}
	if cfg.Logging.Path != filepath.Join(tempHome, ".local", "share", "logbook", "logbook.log") {
		t.Fatalf("log path not expanded: %q", cfg.Logging.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "config.toml")
	content := strings.Join([]string{
		"[logging]",
		`preset = "Tabular"`,
		`level = "WARNING"`,
		"active = false",
		`path = "~/logs/run.csv"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Logging.Preset != "tabular" || cfg.Logging.Level != "warning" {
		t.Fatalf("overrides not normalized: %+v", cfg.Logging)
	}
	if cfg.Logging.Active {
		t.Fatal("expected active=false from file")
	}
	if cfg.Logging.Path != filepath.Join(tempHome, "logs", "run.csv") {
		t.Fatalf("path not expanded: %q", cfg.Logging.Path)
	}
	if cfg.Logging.StorePath == "" {
		t.Fatal("unset fields must keep their defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("overridden config must validate: %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("logging = {"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "unknown preset",
			mutate:  func(c *config.Config) { c.Logging.Preset = "syslog" },
			wantErr: "logging.preset",
		},
		{
			name:    "unknown level",
			mutate:  func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name: "file preset without path",
			mutate: func(c *config.Config) {
				c.Logging.Preset = "file"
				c.Logging.Path = ""
			},
			wantErr: "logging.path",
		},
		{
			name: "store preset without database",
			mutate: func(c *config.Config) {
				c.Logging.Preset = "store"
				c.Logging.StorePath = ""
			},
			wantErr: "logging.store_path",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate error = %v, want mention of %s", err, tc.wantErr)
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(content), "[logging]") {
		t.Fatalf("sample config missing logging section: %q", content)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
