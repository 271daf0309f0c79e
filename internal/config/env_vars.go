package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar  = "PORT"
	hostEnvVar  = "HOST"
	appNameVar  = "APP_NAME"
	defaultPort = "3000"
	defaultHost = "0.0.0.0"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, defaultPort)
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetHost() string {
	return GetEnv(hostEnvVar, defaultHost)
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "DecipherAlgo Realtime")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
