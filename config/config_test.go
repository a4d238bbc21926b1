package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestDefault(t *testing.T) {
	setenv(t, "ENV", "")
	cfg := Default()
	if cfg.Env != "LOCAL" || cfg.LogFormat != "console" || cfg.ExpansionLimit != 0 {
		t.Errorf("local defaults = %+v", cfg)
	}

	setenv(t, "ENV", "SERVER")
	cfg = Default()
	if cfg.Env != "SERVER" || cfg.LogFormat != "json" || cfg.ExpansionLimit == 0 {
		t.Errorf("server defaults = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("server defaults invalid: %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	setenv(t, "ENV", "")
	setenv(t, "GRIDPATH_PORT", "9000")
	setenv(t, "GRIDPATH_HOST", "")
	setenv(t, "GRIDPATH_LOG_LEVEL", "")
	setenv(t, "GRIDPATH_EXPANSION_LIMIT", "")

	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	yml := "host: 127.0.0.1\nport: 8080\nlogLevel: warn\nexpansionLimit: 500\n"
	if err := ioutil.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.LogLevel != "warn" || cfg.ExpansionLimit != 500 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want env override 9000", cfg.Port)
	}
	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadErrors(t *testing.T) {
	setenv(t, "ENV", "")
	setenv(t, "GRIDPATH_PORT", "")
	setenv(t, "GRIDPATH_EXPANSION_LIMIT", "")
	setenv(t, "GRIDPATH_LOG_LEVEL", "")
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}

	bad := filepath.Join(dir, "bad.yaml")
	ioutil.WriteFile(bad, []byte("port: [1"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml accepted")
	}

	level := filepath.Join(dir, "level.yaml")
	ioutil.WriteFile(level, []byte("logLevel: loud\n"), 0644)
	if _, err := Load(level); err == nil {
		t.Error("unknown log level accepted")
	}

	setenv(t, "GRIDPATH_PORT", "eighty")
	if _, err := Load(""); err == nil {
		t.Error("non-numeric GRIDPATH_PORT accepted")
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := Config{Env: "TEST", Port: 1, LogLevel: "error", LogFormat: format}
		logger, err := cfg.NewLogger()
		if err != nil {
			t.Fatalf("NewLogger(%s): %v", format, err)
		}
		if logger.Core().Enabled(-1) {
			t.Errorf("%s logger has debug enabled at level error", format)
		}
	}
}
