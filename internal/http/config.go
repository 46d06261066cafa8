package http

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gym_page_auditor/internal/application/config"
)

const DefaultHost = `:8080`

type HTTPServerConfig struct {
	Host     string
	Timeouts struct {
		Read         time.Duration
		ReadHeader   time.Duration
		Write        time.Duration
		Idle         time.Duration
		ShutdownWait time.Duration
	}
}

func NewHTTPServerConfig() (*HTTPServerConfig, error) {
	if err := config.LoadEnv(config.EnvFile); err != nil {
		return nil, err
	}

	var errors []string
	cfg := &HTTPServerConfig{}

	cfg.Host = os.Getenv("HTTP_SERVER_HOST")
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}

	// unset variables fall back to def
	parseDuration := func(envVar string, def time.Duration) time.Duration {
		value := os.Getenv(envVar)
		if value == "" {
			return def
		}
		duration, err := time.ParseDuration(value)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: invalid duration format: %v", envVar, err))
			return def
		}
		return duration
	}

	// an audit runs inside the request, so writes get a long budget
	cfg.Timeouts.Read = parseDuration("HTTP_APP_READ_TIMEOUT_DURATION", 10*time.Second)
	cfg.Timeouts.ReadHeader = parseDuration("HTTP_APP_READ_HEADER_TIMEOUT_DURATION", 5*time.Second)
	cfg.Timeouts.Write = parseDuration("HTTP_APP_WRITE_TIMEOUT_DURATION", 10*time.Minute)
	cfg.Timeouts.Idle = parseDuration("HTTP_APP_IDLE_TIMEOUT_DURATION", 60*time.Second)
	cfg.Timeouts.ShutdownWait = parseDuration("HTTP_APP_SHUTDOWN_TIMEOUT_DURATION", 15*time.Second)

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return cfg, nil
}
