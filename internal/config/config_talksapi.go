package config

import "time"

// TalksAPIConfig holds talks API client configuration
type TalksAPIConfig struct {
	URL         string        `env:"URL" envDefault:"http://localhost:8080"`
	User        string        `env:"USER"`
	Password    string        `env:"PASSWORD"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
	NewestLimit int           `env:"NEWEST_LIMIT" envDefault:"5"`
}

// HasCredentials returns true if Basic Auth credentials are configured
func (c *TalksAPIConfig) HasCredentials() bool {
	return c.User != "" && c.Password != ""
}
