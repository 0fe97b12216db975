package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scraper-dashboard/internal/conf"
	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/sources"
)

const snapshotA = `{
  "records": [
    {"type": "article", "id": "a1", "title": "Hello", "source": "blog", "category": "tech", "timestamp": "2025-01-01T00:00:00Z"},
    {"type": "news", "id": "n1", "title": "Headline", "source": "wire", "timestamp": "2025-01-02T00:00:00Z"}
  ],
  "activities": [{"id": "act-1", "date": "2025-01-02T00:00:00Z", "source": "blog", "status": "completed"}]
}`

const snapshotB = `{
  "records": [
    {"type": "review", "id": "r1", "title": "Great", "source": "shop", "rating": 4.5, "timestamp": "2025-01-03T00:00:00Z"}
  ]
}`

func writeSnapshots(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(snapshotA), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(snapshotB), 0o644))
	return a, b
}

func newConfig(kind, path string) *conf.Config {
	return &conf.Config{Source: conf.SourceConfig{Kind: kind, Path: path}}
}

func TestNewDataMemory(t *testing.T) {
	a, b := writeSnapshots(t)

	d, cleanup, err := NewData(context.Background(), newConfig("memory", a+", "+b), logger.NewNop())
	require.NoError(t, err)
	defer cleanup()

	_, ok := d.Source.(*sources.Memory)
	require.True(t, ok)
	assert.Nil(t, d.S3)

	records, err := d.Source.Records(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestNewDataMemoryWithoutSnapshot(t *testing.T) {
	d, cleanup, err := NewData(context.Background(), newConfig("memory", ""), logger.NewNop())
	require.NoError(t, err)
	defer cleanup()

	records, err := d.Source.Records(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewDataMemoryPersistsSettings(t *testing.T) {
	a, _ := writeSnapshots(t)
	cfg := newConfig("memory", a)
	cfg.Source.SettingsPath = filepath.Join(t.TempDir(), "settings.json")
	ctx := context.Background()

	d, cleanup, err := NewData(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	defer cleanup()

	settings, err := d.Source.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	settings.Display.Theme = models.ThemeDark
	settings.Display.ItemsPerPage = 24
	require.NoError(t, d.Source.SaveSettings(ctx, settings))
	assert.FileExists(t, cfg.Source.SettingsPath)

	restarted, cleanup2, err := NewData(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	defer cleanup2()

	got, err := restarted.Source.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)

	records, err := restarted.Source.Records(ctx, "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestNewDataMemoryRejectsDuplicateIDs(t *testing.T) {
	a, _ := writeSnapshots(t)

	_, _, err := NewData(context.Background(), newConfig("memory", a+","+a), logger.NewNop())
	assert.ErrorIs(t, err, models.ErrDuplicateID)
}

func TestNewDataFile(t *testing.T) {
	a, b := writeSnapshots(t)

	d, cleanup, err := NewData(context.Background(), newConfig("file", a), logger.NewNop())
	require.NoError(t, err)
	defer cleanup()
	_, ok := d.Source.(*sources.File)
	assert.True(t, ok)

	d, cleanup, err = NewData(context.Background(), newConfig("file", a+","+b), logger.NewNop())
	require.NoError(t, err)
	defer cleanup()
	_, ok = d.Source.(*sources.Aggregate)
	require.True(t, ok)

	records, err := d.Source.Records(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, records, 3)

	activities, err := d.Source.Activities(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestNewDataUnknownKind(t *testing.T) {
	_, _, err := NewData(context.Background(), newConfig("ftp", ""), logger.NewNop())
	assert.Error(t, err)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.json", "b.json"}, splitPaths(" a.json, ,b.json "))
	assert.Nil(t, splitPaths(""))
}
