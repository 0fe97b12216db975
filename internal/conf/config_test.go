package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Source.Kind)
	assert.Equal(t, 12, cfg.Query.PageSize)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "index.html", cfg.Publish.Key)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
source:
  kind: file
  path: /data/snapshot.json
redis:
  addr: localhost:6379
  ttl: 30s
query:
  page_size: 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Source.Kind)
	assert.Equal(t, "/data/snapshot.json", cfg.Source.Path)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 20, cfg.Query.PageSize)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DASHBOARD_SOURCE_KIND", "s3")
	t.Setenv("DASHBOARD_SOURCE_BUCKET", "scraper-snapshots")
	t.Setenv("DASHBOARD_QUERY_PAGE_SIZE", "50")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Source.Kind)
	assert.Equal(t, "scraper-snapshots", cfg.Source.Bucket)
	assert.Equal(t, 50, cfg.Query.PageSize)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("DASHBOARD_SOURCE_KIND", "file")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
