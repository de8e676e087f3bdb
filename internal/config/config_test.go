package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeStubFont creates a file for FONT_PATH so validation passes.
func writeStubFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, []byte("stub"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func setRequiredEnv(t *testing.T, fontPath string) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN", "ajs")
	t.Setenv("FONT_PATH", fontPath)
}

func TestNewServerConfigDefaults(t *testing.T) {
	setRequiredEnv(t, writeStubFont(t))
	t.Setenv("BLOB_READ_WRITE_TOKEN", "")
	os.Unsetenv("BLOB_READ_WRITE_TOKEN")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want dev", cfg.Environment)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.BlobBaseURL != "https://blob.vercel-storage.com" {
		t.Errorf("BlobBaseURL = %q", cfg.BlobBaseURL)
	}
	if cfg.AccessToken != "ajs" {
		t.Errorf("AccessToken = %q", cfg.AccessToken)
	}
	if cfg.BlobReadWriteToken != "" {
		t.Errorf("BlobReadWriteToken should default to empty, got %q", cfg.BlobReadWriteToken)
	}
}

func TestNewServerConfigMissingAccessToken(t *testing.T) {
	t.Setenv("FONT_PATH", writeStubFont(t))
	t.Setenv("ACCESS_TOKEN", "") // register restore, then drop it
	os.Unsetenv("ACCESS_TOKEN")

	if _, err := NewServerConfig(); err == nil {
		t.Fatal("expected an error when ACCESS_TOKEN is not set")
	}
}

func TestNewServerConfigMissingBlobTokenIsNotFatal(t *testing.T) {
	setRequiredEnv(t, writeStubFont(t))
	t.Setenv("BLOB_READ_WRITE_TOKEN", "")
	os.Unsetenv("BLOB_READ_WRITE_TOKEN")

	if _, err := NewServerConfig(); err != nil {
		t.Fatalf("missing blob credential must not fail startup: %v", err)
	}
}

func TestNewServerConfigMissingFontIsFatal(t *testing.T) {
	setRequiredEnv(t, filepath.Join(t.TempDir(), "missing.ttf"))

	if _, err := NewServerConfig(); err == nil {
		t.Fatal("expected an error when FONT_PATH does not exist")
	}
}

func TestValidateConfig(t *testing.T) {
	fontPath := writeStubFont(t)

	tests := []struct {
		name    string
		mutate  func(*ServerEnvironment)
		wantErr bool
	}{
		{"valid", func(cfg *ServerEnvironment) {}, false},
		{"port too low", func(cfg *ServerEnvironment) { cfg.Port = 0 }, true},
		{"port too high", func(cfg *ServerEnvironment) { cfg.Port = 70000 }, true},
		{"bad environment", func(cfg *ServerEnvironment) { cfg.Environment = "production" }, true},
		{"zero request size", func(cfg *ServerEnvironment) { cfg.MaxRequestBytes = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ServerEnvironment{
				Environment:     "dev",
				Port:            8080,
				MaxRequestBytes: 1024,
				FontPath:        fontPath,
			}
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
