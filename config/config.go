package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Web Admin
	EnableWebAPI  bool
	EnableSwagger bool
	SwaggerPrefix string
	ApiPrefix     string
	WebPort       string
	Username      string
	Password      string
	JwtSecret     string

	// Engine
	Actor            string
	AuditCapacity    int
	ConnectTimeout   int
	SecretsFile      string
	ConnectionsFile  string
	DataDir          string
	RefreshTimeout   int
	EnablePrometheus bool

	// Logging
	LogLevel string
	LogFile  string

	Version string
}

// LoadConfig loads configuration from .env file, environment variables, or defaults
// Priority: environment variables > .env file > default values
func LoadConfig(version string) *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	return &Config{
		EnableWebAPI:  getEnvAsBool("MQSCOPE_ENABLE_WEB_API", true),
		EnableSwagger: getEnvAsBool("MQSCOPE_ENABLE_SWAGGER", false),
		SwaggerPrefix: getEnv("MQSCOPE_SWAGGER_PREFIX", "/swagger"),
		ApiPrefix:     getEnv("MQSCOPE_API_PREFIX", "/api"),
		WebPort:       getEnv("MQSCOPE_WEB_PORT", "3000"),
		Username:      getEnv("MQSCOPE_USERNAME", "admin"),
		Password:      getEnv("MQSCOPE_PASSWORD", "admin"),
		JwtSecret:     getEnv("MQSCOPE_JWT_SECRET", "secret"),

		Actor:            getEnv("MQSCOPE_ACTOR", "mqscope"),
		AuditCapacity:    getEnvAsInt("MQSCOPE_AUDIT_CAPACITY", 10000),
		ConnectTimeout:   getEnvAsInt("MQSCOPE_CONNECT_TIMEOUT_SECONDS", 30),
		RefreshTimeout:   getEnvAsInt("MQSCOPE_REFRESH_TIMEOUT_SECONDS", 30),
		DataDir:          getEnv("MQSCOPE_DATA_DIR", "data"),
		SecretsFile:      getEnv("MQSCOPE_SECRETS_FILE", ""),
		ConnectionsFile:  getEnv("MQSCOPE_CONNECTIONS_FILE", ""),
		EnablePrometheus: getEnvAsBool("MQSCOPE_ENABLE_PROMETHEUS", true),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("MQSCOPE_LOG_FILE", ""),

		Version: version,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s: %s, using default: %d\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s: %s, using default: %t\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
