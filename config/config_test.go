package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
http:
  address: ":8080"
database:
  host: "db.local"
  port: 5432
  user: "app"
  password: "secret"
  name: "spacetravel"
  ssl_mode: "disable"
kafka:
  brokers: ["localhost:9092"]
  entries_topic: "registry.entries"
registry:
  confirm_timeout_seconds: 30
  cache_ttl_seconds: 60
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "host=db.local port=5432 user=app password=secret dbname=spacetravel sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "registry.entries", cfg.Kafka.EntriesTopic)
	assert.Equal(t, 30*time.Second, cfg.Registry.ConfirmTimeout())
	assert.Equal(t, time.Minute, cfg.Registry.CacheTTL())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
