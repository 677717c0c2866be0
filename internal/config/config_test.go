package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "5000" || cfg.Database.Driver != "sqlite" {
		t.Errorf("defaults = %+v / %+v", cfg.Server, cfg.Database)
	}
	if cfg.JWT.ExpireTime != 168*time.Hour {
		t.Errorf("jwt expiry = %v, want 7 days", cfg.JWT.ExpireTime)
	}
	if cfg.JWT.Secret == "" {
		t.Error("debug mode should fall back to a development secret")
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
progress:
  verify_attempt_refs: true
jwt:
  expire_hours: 2
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_PATH", "/tmp/tutor.db")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if !cfg.Progress.VerifyAttemptRefs {
		t.Error("verify_attempt_refs not read")
	}
	if cfg.JWT.ExpireTime != 2*time.Hour {
		t.Errorf("jwt expiry = %v", cfg.JWT.ExpireTime)
	}
	if cfg.JWT.Secret != "from-env" || cfg.Database.Path != "/tmp/tutor.db" {
		t.Errorf("env overrides not applied: %q %q", cfg.JWT.Secret, cfg.Database.Path)
	}
}

func TestLoadConfigReleaseSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"missing", "", true},
		{"too short", "short", true},
		{"long enough", "0123456789abcdef0123456789abcdef", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SERVER_MODE", "release")
			t.Setenv("JWT_SECRET", tt.secret)
			_, err := LoadConfig(t.TempDir())
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
