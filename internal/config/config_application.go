package config

// Mode selects how the client logs: production logs JSON warnings, development logs text at debug level
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// IsDevelopment reports whether m is development
func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}

// IsProduction reports whether m is production
func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

// ApplicationConfig holds settings that apply to the whole client
type ApplicationConfig struct {
	Mode Mode `env:"MODE" envDefault:"production"`
}
