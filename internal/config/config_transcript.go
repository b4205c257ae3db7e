package config

// TranscriptConfig holds transcript request defaults
type TranscriptConfig struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	DefaultFormat   string `env:"DEFAULT_FORMAT" envDefault:"txt"`
}
