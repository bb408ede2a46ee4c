// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/research-catalog/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "trims values",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, RedisPassword, "  hunter2  \n")
				writeFile(t, dir, "share-token", "tok")
				return dir
			},
			want: Secrets{RedisPassword: "hunter2", "share-token": "tok"},
		},
		{
			name: "skips hidden files, empty files, and directories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, "blank", "   \n")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFile(t, dir, RedisPassword, "pw")
				return dir
			},
			want: Secrets{RedisPassword: "pw"},
		},
		{
			name: "missing directory is empty",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent")
			},
			want: Secrets{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	core, logs := observer.New(zapcore.WarnLevel)
	got, err := Load(dir, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, Secrets{"good-key": "value123"}, got)
	assert.Equal(t, 1, logs.FilterMessage("skipping unreadable secret").Len())
}

func TestGetPrefersFallback(t *testing.T) {
	s := Secrets{RedisPassword: "from-file"}

	assert.Equal(t, "from-file", s.Get(RedisPassword, ""))
	assert.Equal(t, "from-config", s.Get(RedisPassword, "from-config"))
	assert.Equal(t, "", s.Get("missing", ""))
}

func TestApplyBookmarks(t *testing.T) {
	s := Secrets{RedisPassword: "pw"}

	cfg := types.BookmarkConfig{Backend: types.BookmarkRedis}
	s.ApplyBookmarks(&cfg)
	assert.Equal(t, "pw", cfg.RedisPassword)

	cfg = types.BookmarkConfig{RedisPassword: "explicit"}
	s.ApplyBookmarks(&cfg)
	assert.Equal(t, "explicit", cfg.RedisPassword)
}

func TestKeys(t *testing.T) {
	s := Secrets{"b": "2", "a": "1"}
	assert.Equal(t, []string{"a", "b"}, s.Keys())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
