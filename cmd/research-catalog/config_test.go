// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-catalog/pkg/types"
)

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("RESEARCH_CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "research-catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`catalog:
  page_size: 10
  default_sort: title
  debounce_window: 50ms
  share_base_url: https://catalog.example.org/
  reset:
    subjects: [Security]
    last_years: 5
bookmarks:
  backend: sqlite
logging:
  level: debug
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Catalog.PageSize)
	assert.Equal(t, types.SortTitle, cfg.Catalog.DefaultSort)
	assert.Equal(t, 50*time.Millisecond, cfg.Catalog.DebounceWindow)
	assert.Equal(t, []string{"Security"}, cfg.Catalog.Reset.Subjects)
	assert.Equal(t, 5, cfg.Catalog.Reset.LastYears)
	assert.Equal(t, types.BookmarkSQLite, cfg.Bookmarks.Backend)
	assert.Equal(t, "bookmarks.db", cfg.Bookmarks.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("RESEARCH_CATALOG_CATALOG_PAGE_SIZE", "12")
	t.Setenv("RESEARCH_CATALOG_BOOKMARKS_BACKEND", "redis")
	t.Setenv("RESEARCH_CATALOG_BOOKMARKS_REDIS_ADDR", "cache:6380")

	cfg, err := loadConfig(newEnvViper())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Catalog.PageSize)
	assert.Equal(t, types.BookmarkRedis, cfg.Bookmarks.Backend)
	assert.Equal(t, "cache:6380", cfg.Bookmarks.RedisAddr)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  any
		errMsg string
	}{
		{"sort", "catalog.default_sort", "random", "default_sort"},
		{"backend", "bookmarks.backend", "etcd", "bookmark backend"},
		{"last years", "catalog.reset.last_years", -1, "last_years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := loadConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseRecordID(t *testing.T) {
	id, err := parseRecordID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "0", "-3", "abc", "4294967296"} {
		_, err := parseRecordID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
