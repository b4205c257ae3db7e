package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and optionally from a .env file.
// It returns a pointer to the Config struct or an error if parsing or validation fails.
func Load() (*Config, error) {
	// Try to load .env file, but ignore error if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks values that parse fine but cannot be used
func (c *Config) Validate() error {
	var errs []error

	if c.TalksAPI.URL == "" {
		errs = append(errs, errors.New("TALKS_API_URL must not be empty"))
	}
	if c.TalksAPI.NewestLimit <= 0 {
		errs = append(errs, fmt.Errorf("TALKS_API_NEWEST_LIMIT must be positive, got %d", c.TalksAPI.NewestLimit))
	}
	if !c.Mode.IsProduction() && !c.Mode.IsDevelopment() {
		errs = append(errs, fmt.Errorf("MODE must be %q or %q, got %q", ModeProduction, ModeDevelopment, c.Mode))
	}
	if c.TalksAPI.Timeout < 0 {
		errs = append(errs, fmt.Errorf("TALKS_API_TIMEOUT must not be negative, got %s", c.TalksAPI.Timeout))
	}
	if c.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.Cache.Size))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must not be negative, got %s", c.Cache.TTL))
	}
	if c.Transcript.DefaultLanguage == "" {
		errs = append(errs, errors.New("TRANSCRIPT_DEFAULT_LANGUAGE must not be empty"))
	}

	return errors.Join(errs...)
}
