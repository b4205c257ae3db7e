package config

// OIDCConfig holds the OAuth2 client credentials used against the talks API.
// The token endpoint is discovered from the issuer.
type OIDCConfig struct {
	IssuerURL    string   `env:"ISSUER_URL"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES" envSeparator:","`
}

// IsConfigured returns true if OIDC is fully configured
func (c *OIDCConfig) IsConfigured() bool {
	return c.IssuerURL != "" &&
		c.ClientID != "" &&
		c.ClientSecret != ""
}
