package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"nil uses default", nil, false},
		{"default config", DefaultConfig(), false},
		{"console format", &Config{Level: "debug", Format: "console", Output: "console"}, false},
		{
			name: "file output",
			config: &Config{
				Level:  "warn",
				Format: "json",
				Output: "file",
				File:   FileConfig{Filename: filepath.Join(dir, "app.log"), MaxSize: 1},
			},
		},
		{"invalid level", &Config{Level: "verbose", Format: "json", Output: "console"}, true},
		{"invalid format", &Config{Level: "info", Format: "xml", Output: "console"}, true},
		{"invalid output", &Config{Level: "info", Format: "json", Output: "syslog"}, true},
		{"file without name", &Config{Level: "info", Format: "json", Output: "both", File: FileConfig{MaxSize: 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
			l.Info("test message", zap.String("k", "v"))
		})
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	l := NewNop()
	assert.Same(t, l, l.WithContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.NotSame(t, l, l.WithContext(ctx))
}

func TestOrGlobal(t *testing.T) {
	l := NewNop()
	assert.Same(t, l, OrGlobal(l))
	assert.NotNil(t, OrGlobal(nil))
}
