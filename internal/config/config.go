package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config is built once at startup and shared read-only by every connection.
type Config struct {
	// FilesDirectory is the root for /files/* reads and writes.
	FilesDirectory string
	Addr           string
	// IdleTimeout bounds each body read when the request declares no
	// Content-Length. Its expiry is taken as the end of the body.
	IdleTimeout time.Duration
	// ReadTimeout bounds reading the request line and headers.
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        zerolog.Level
}

func Default() *Config {
	return &Config{
		FilesDirectory:  ".",
		Addr:            "127.0.0.1:4221",
		IdleTimeout:     500 * time.Millisecond,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        zerolog.InfoLevel,
	}
}

// Load parses command line arguments (without the program name) on top of
// the defaults.
func Load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("httpserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.FilesDirectory, "directory", cfg.FilesDirectory, "root directory for /files/")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "body idle window without Content-Length")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "request head read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "response write timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown limit")
	level := fs.String("log-level", cfg.LogLevel.String(), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.FilesDirectory == "" {
		return fmt.Errorf("files directory must not be empty")
	}
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %s", c.IdleTimeout)
	}
	return nil
}
