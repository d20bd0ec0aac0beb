package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the PostgreSQL connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type Config struct {
	Port     string
	Storage  string
	SeedMock bool
	SeedFile string
	DB       DBConfig
}

// Load reads the server configuration from the environment.
func Load() Config {
	return Config{
		Port:     getEnv("PORT", "8080"),
		Storage:  getEnv("STORAGE", StorageMemory),
		SeedMock: getEnvBool("SEED_MOCK", true),
		SeedFile: os.Getenv("SEED_FILE"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "myuser"),
			Password: getEnv("DB_PASSWORD", "mypassword"),
			Name:     getEnv("DB_NAME", "catalog_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
