package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "STORE_DRIVER", "STORE_PATH", "STORE_DATABASE_URL", "REDIS_ADDR", "REDIS_URL",
	"OUTPUT_DIR", "CHROME_PATH", "AUTOSAVE_DELAY", "LOAD_DELAY", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %q", cfg.Port)
	}
	if cfg.StoreDriver != DriverFile {
		t.Errorf("expected file driver, got %q", cfg.StoreDriver)
	}
	if cfg.StorePath != "resume-data/store" {
		t.Errorf("unexpected store path %q", cfg.StorePath)
	}
	if cfg.OutputDir != "resume-data/generated" {
		t.Errorf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.AutosaveDelay != 2*time.Second {
		t.Errorf("expected 2s autosave delay, got %v", cfg.AutosaveDelay)
	}
	if cfg.LoadDelay != 800*time.Millisecond {
		t.Errorf("expected 800ms load delay, got %v", cfg.LoadDelay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUTOSAVE_DELAY", "500ms")
	t.Setenv("LOAD_DELAY", "0s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.StoreDriver != DriverRedis {
		t.Errorf("expected redis driver, got %q", cfg.StoreDriver)
	}
	if cfg.RedisAddr != "redis://localhost:6379/0" {
		t.Errorf("REDIS_URL should populate RedisAddr, got %q", cfg.RedisAddr)
	}
	if cfg.AutosaveDelay != 500*time.Millisecond {
		t.Errorf("unexpected autosave delay %v", cfg.AutosaveDelay)
	}
	if cfg.LoadDelay != 0 {
		t.Errorf("unexpected load delay %v", cfg.LoadDelay)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones.
	os.Unsetenv("PORT")
	os.Unsetenv("STORE_DRIVER")
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("STORE_DRIVER")
	})

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=4100\nSTORE_DRIVER=memory\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "4100" {
		t.Errorf("expected port from env file, got %q", cfg.Port)
	}
	if cfg.StoreDriver != DriverMemory {
		t.Errorf("expected memory driver from env file, got %q", cfg.StoreDriver)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTOSAVE_DELAY", "soon")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		StoreDriver:   DriverFile,
		StorePath:     "store",
		OutputDir:     "out",
		AutosaveDelay: time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "file ok", mutate: func(*Config) {}},
		{name: "memory ok", mutate: func(c *Config) { c.StoreDriver = DriverMemory }},
		{name: "file without path", mutate: func(c *Config) { c.StorePath = "" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.StoreDriver = DriverPostgres }, wantErr: true},
		{name: "postgres with url", mutate: func(c *Config) {
			c.StoreDriver = DriverPostgres
			c.StoreDatabaseURL = "postgres://localhost/resume"
		}},
		{name: "redis without addr", mutate: func(c *Config) { c.StoreDriver = DriverRedis }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "sqlite" }, wantErr: true},
		{name: "zero autosave", mutate: func(c *Config) { c.AutosaveDelay = 0 }, wantErr: true},
		{name: "negative load delay", mutate: func(c *Config) { c.LoadDelay = -time.Second }, wantErr: true},
		{name: "no output dir", mutate: func(c *Config) { c.OutputDir = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
