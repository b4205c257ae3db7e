package config

import "context"

type configKey struct{}

// WithConfig returns a copy of ctx carrying cfg, for constructors that read
// their settings from context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig returns the Config carried by ctx.
// It panics when ctx was not built with WithConfig.
func GetConfig(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok {
		panic("config not found in context")
	}
	return cfg
}
