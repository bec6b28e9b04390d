package server

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the HTTP adapter settings, populated from AERCOMP_* env vars.
type Config struct {
	// Address is the listen address.
	Address string `envconfig:"ADDRESS" default:"0.0.0.0:8080"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// MaxBodyBytes caps the request body size.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
}

// ConfigFromEnv reads the server configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("aercomp", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading server config: %w", err)
	}
	return cfg, nil
}
