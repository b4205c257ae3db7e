package config

// Config holds all application configuration loaded from environment variables
type Config struct {
	ApplicationConfig

	TalksAPI   TalksAPIConfig   `envPrefix:"TALKS_API_"`
	OIDC       OIDCConfig       `envPrefix:"OIDC_"`
	Cache      CacheConfig      `envPrefix:"CACHE_"`
	Transcript TranscriptConfig `envPrefix:"TRANSCRIPT_"`
}
