package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_ENV",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_URL", "REDIS_PASSWORD",
		"IPFS_API_ADDR", "IPFS_GATEWAY",
		"API_KEY", "TOKENS_VALIDATE_CREATOR_ADDRESS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Server.Env = %q, want development", cfg.Server.Env)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Database.DBName != "memedrop" {
		t.Errorf("Database.DBName = %q, want memedrop", cfg.Database.DBName)
	}
	if cfg.IPFS.Gateway != "https://gateway.pinata.cloud" {
		t.Errorf("IPFS.Gateway = %q", cfg.IPFS.Gateway)
	}
	if cfg.Security.APIKey != "" {
		t.Errorf("Security.APIKey = %q, want empty", cfg.Security.APIKey)
	}
	if cfg.Tokens.ValidateCreatorAddress {
		t.Error("Tokens.ValidateCreatorAddress must default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("API_KEY", "secret-key")
	t.Setenv("TOKENS_VALIDATE_CREATOR_ADDRESS", "true")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Database.Port = %d, want 5433", cfg.Database.Port)
	}
	if cfg.Security.APIKey != "secret-key" {
		t.Errorf("Security.APIKey = %q", cfg.Security.APIKey)
	}
	if !cfg.Tokens.ValidateCreatorAddress {
		t.Error("Tokens.ValidateCreatorAddress must honor the env toggle")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("TOKENS_VALIDATE_CREATOR_ADDRESS", "yes please")

	cfg := Load()

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want fallback 5432", cfg.Database.Port)
	}
	if cfg.Tokens.ValidateCreatorAddress {
		t.Error("malformed bool must fall back to false")
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "pw",
		DBName:   "memedrop",
		SSLMode:  "require",
	}
	want := "postgres://app:pw@db.internal:5432/memedrop?sslmode=require"
	if got := cfg.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
