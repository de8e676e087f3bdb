package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=8080"`
	LogLevel              string        `env:"LOG_LEVEL,default=debug"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT,default=60s"`
	MaxRequestBytes       int64         `env:"MAX_REQUEST_BYTES,default=10485760"`

	// blob store settings
	BlobBaseURL     string        `env:"BLOB_BASE_URL,default=https://blob.vercel-storage.com"`
	BlobHTTPTimeout time.Duration `env:"BLOB_HTTP_TIMEOUT,default=30s"`

	// BlobReadWriteToken is deliberately not required at startup: a
	// missing credential surfaces as an upload/download failure at
	// request time, not a boot failure.
	BlobReadWriteToken string `env:"BLOB_READ_WRITE_TOKEN"`

	// pdf settings
	FontPath string `env:"FONT_PATH,default=fonts/NotoSansJP-Regular.ttf"`

	// Required settings - must be set by environment variables
	AccessToken string `env:"ACCESS_TOKEN,required=true"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateConfig checks for required env variables
func validateConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if cfg.MaxRequestBytes < 1 {
		return fmt.Errorf("MAX_REQUEST_BYTES must be at least 1")
	}

	// The PDF renderer cannot produce anything without the embedded
	// font, so a missing font file is a startup failure.
	if _, err := os.Stat(cfg.FontPath); err != nil {
		return fmt.Errorf("FONT_PATH %q is not readable: %w", cfg.FontPath, err)
	}

	return nil
}
