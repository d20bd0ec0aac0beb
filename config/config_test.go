package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE", "SEED_MOCK", "SEED_FILE", "DB_HOST", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.True(t, cfg.SeedMock)
	assert.Empty(t, cfg.SeedFile)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "catalog_db", cfg.DB.Name)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE", StoragePostgres)
	t.Setenv("SEED_MOCK", "false")
	t.Setenv("SEED_FILE", "fixtures/catalog.yaml")
	t.Setenv("DB_HOST", "db")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.False(t, cfg.SeedMock)
	assert.Equal(t, "fixtures/catalog.yaml", cfg.SeedFile)
	assert.Equal(t, "host=db port=5432 user=myuser password=mypassword dbname=catalog_db sslmode=disable", cfg.DB.DSN())
}
