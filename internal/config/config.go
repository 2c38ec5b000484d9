package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	JWTTTLMinutes int
	GinMode       string
	ServerPort    string
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "synergyspace"),
		DBPassword:    getEnv("DB_PASSWORD", "synergyspace"),
		DBName:        getEnv("DB_NAME", "synergyspace"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		JWTSecret:     getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTIssuer:     getEnv("JWT_ISSUER", "synergyspace.io"),
		JWTAudience:   getEnv("JWT_AUDIENCE", "synergyspace-users"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		GinMode:       getEnv("GIN_MODE", "debug"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
