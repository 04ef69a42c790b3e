package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
		Env  string
	}
	DB struct {
		URL          string
		MaxConns     int
		MinConns     int
		ConnLifetime time.Duration
	}
	JWT struct {
		Secret string
	}
	R2 struct {
		Endpoint      string
		AccessKey     string
		SecretKey     string
		Bucket        string
		PublicBaseURL string
	}
	Promo struct {
		Enabled bool
	}
}

// Load reads configuration from a config file when present, with
// environment variables taking precedence. A missing file is not an
// error: everything can come from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("Server.Port", "8080")
	v.SetDefault("Server.Env", "production")
	v.SetDefault("DB.MaxConns", 10)
	v.SetDefault("DB.MinConns", 2)
	v.SetDefault("DB.ConnLifetime", time.Hour)
	v.SetDefault("Promo.Enabled", true)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file: build entirely from the environment.
		cfg := &Config{}
		cfg.Server.Port = getEnvOr("SERVER_PORT", "8080")
		cfg.Server.Env = getEnvOr("APP_ENV", "production")
		cfg.DB.URL = os.Getenv("DATABASE_URL")
		cfg.DB.MaxConns = 10
		cfg.DB.MinConns = 2
		cfg.DB.ConnLifetime = time.Hour
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.R2.Endpoint = os.Getenv("R2_ENDPOINT")
		cfg.R2.AccessKey = os.Getenv("R2_ACCESS_KEY")
		cfg.R2.SecretKey = os.Getenv("R2_SECRET_KEY")
		cfg.R2.Bucket = os.Getenv("R2_BUCKET_NAME")
		cfg.R2.PublicBaseURL = os.Getenv("R2_PUBLIC_BASE_URL")
		cfg.Promo.Enabled = getEnvOr("PROMO_ENABLED", "true") != "false"
		return cfg, nil
	}

	// Process any ${ENV_VAR} syntax in the config values
	for _, key := range v.AllKeys() {
		value := v.GetString(key)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := strings.TrimPrefix(strings.TrimSuffix(value, "}"), "${")
			if envValue := os.Getenv(envVar); envValue != "" {
				v.Set(key, envValue)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
