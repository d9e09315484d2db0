package config

import (
	"os"
	"strconv"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	IPFS     IPFSConfig
	Security SecurityConfig
	Tokens   TokensConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// IPFSConfig holds the pinning node address and public gateway base
type IPFSConfig struct {
	APIAddr string
	Gateway string
}

// SecurityConfig holds the shared API key gating all token routes
type SecurityConfig struct {
	APIKey string
}

// TokensConfig holds token-domain toggles
type TokensConfig struct {
	// ValidateCreatorAddress rejects creator addresses that are not
	// 0x-prefixed hex at create time. Off by default.
	ValidateCreatorAddress bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "memedrop"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		IPFS: IPFSConfig{
			APIAddr: getEnv("IPFS_API_ADDR", "localhost:5001"),
			Gateway: getEnv("IPFS_GATEWAY", "https://gateway.pinata.cloud"),
		},
		Security: SecurityConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Tokens: TokensConfig{
			ValidateCreatorAddress: getEnvAsBool("TOKENS_VALIDATE_CREATOR_ADDRESS", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
