package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const snapshot = `{
  "records": [
    {"type": "article", "id": "a1", "title": "Go generics", "source": "blog", "category": "tech", "timestamp": "2025-02-01T00:00:00Z", "content": "type parameters"},
    {"type": "article", "id": "a2", "title": "Rust async", "source": "blog", "category": "tech", "timestamp": "2025-02-02T00:00:00Z"},
    {"type": "image", "id": "i1", "title": "Aurora", "source": "gallery", "timestamp": "2025-02-03T00:00:00Z", "imageUrl": "https://img/aurora.jpg"}
  ],
  "activities": []
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSnapshot(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))
	return dir, path
}

func TestQueryCommand(t *testing.T) {
	_, path := writeSnapshot(t)

	out, err := run(t, "query", "--snapshot", path, "--type", "article", "--sort", "oldest", "--limit", "1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), gjson.Get(out, "total").Int())
	assert.Equal(t, "a1", gjson.Get(out, "items.0.id").String())
	assert.Equal(t, int64(2), gjson.Get(out, "pagination.totalPages").Int())
}

func TestQueryCommandSearch(t *testing.T) {
	_, path := writeSnapshot(t)

	out, err := run(t, "query", "--snapshot", path, "-q", "PARAMETERS")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.Get(out, "total").Int())
}

func TestQueryCommandRejectsBadFlags(t *testing.T) {
	_, path := writeSnapshot(t)

	_, err := run(t, "query", "--snapshot", path, "--sort", "sideways")
	assert.Error(t, err)

	_, err = run(t, "query", "--snapshot", path, "--page", "-1")
	assert.Error(t, err)

	_, err = run(t, "query", "--snapshot", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	dir, path := writeSnapshot(t)
	outPath := filepath.Join(dir, "index.html")

	out, err := run(t, "render", "--snapshot", path, "--category", "tech", "-o", outPath, "--title", "Tech digest")
	require.NoError(t, err)
	assert.Contains(t, out, outPath)

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Tech digest")
	assert.Contains(t, string(html), "Go generics")
	assert.NotContains(t, string(html), "Aurora")
}
