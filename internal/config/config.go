package config

type Config interface {
	EnvConfig
	CorsConfig
	OAuthConfig
	RealtimeConfig
	PersonaConfig
}

type EnvConfig interface {
	GetPort() string
	GetHost() string
	GetAppName() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	OAuth
	Realtime
	Persona
}

func New() Config {
	return mainConfig{}
}
