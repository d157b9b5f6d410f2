package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  path: /tmp/x.db
auth:
  jwt_secret: s3cret
render:
  watermark: Acme
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Server.Port != 9090 || c.Database.Path != "/tmp/x.db" || c.Auth.JWTSecret != "s3cret" || c.Render.Watermark != "Acme" {
		t.Errorf("config = %+v", c)
	}
	if c.Auth.TokenTTLHours != 24 || c.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v", c)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("BILLING_SERVER_PORT", "7070")
	t.Setenv("BILLING_LOG_LEVEL", "debug")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Port != 7070 || c.Log.Level != "debug" {
		t.Errorf("env not applied: %+v", c)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]string{
		"unknown driver":       "database:\n  driver: mysql\n",
		"postgres without url": "database:\n  driver: postgres\n",
		"bad port":             "server:\n  port: -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil for missing explicit file")
	}
}
