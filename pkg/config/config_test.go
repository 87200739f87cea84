package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "finbot-api", cfg.App.Name)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, config.BackupFS, cfg.Backup.Driver)
	assert.Equal(t, "backups", cfg.Backup.Dir)
	assert.InDelta(t, 0.20, cfg.Dashboard.SavingsRate, 1e-9)
	assert.False(t, cfg.Auth.Enabled())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("DASHBOARD_SAVINGS_RATE", "0.3")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.InDelta(t, 0.3, cfg.Dashboard.SavingsRate, 1e-9)
	assert.True(t, cfg.Auth.Enabled())
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_S3SinBucket(t *testing.T) {
	t.Setenv("BACKUP_DRIVER", "s3")
	_, err := config.Load()
	assert.ErrorContains(t, err, "BACKUP_S3_BUCKET")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "fin", Password: "p@ss:word", DBName: "finbot", SSLMode: "disable"}
	assert.Equal(t, "postgres://fin:p%40ss%3Aword@db:5432/finbot?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
