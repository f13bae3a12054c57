package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must be >= 0 (got %d)", c.Server.MaxBodyBytes)
	}
	if c.Server.SubmitRatePerMinute < 0 {
		return fmt.Errorf("server.submit_rate_per_minute must be >= 0 (got %d)", c.Server.SubmitRatePerMinute)
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0 (got %d)", c.Database.MaxOpenConns)
	}

	if err := c.Assessment.validate(); err != nil {
		return fmt.Errorf("assessment: %w", err)
	}

	return nil
}

func (a *AssessmentConfig) validate() error {
	if a.AutosaveEvery < 500*time.Millisecond {
		return fmt.Errorf("autosave_every must be >= 500ms (got %v)", a.AutosaveEvery)
	}

	a.AnonymousName = strings.TrimSpace(a.AnonymousName)
	if a.AnonymousName == "" {
		return fmt.Errorf("anonymous_name must not be blank")
	}
	if strings.TrimSpace(a.CookieName) == "" {
		return fmt.Errorf("cookie_name must not be blank")
	}

	return nil
}
