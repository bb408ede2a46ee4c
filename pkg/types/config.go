// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// CatalogConfig holds settings for loading and browsing the catalog.
type CatalogConfig struct {
	// RecordsFile is a YAML or JSON file of records. Empty uses the built-in
	// sample records.
	RecordsFile string `json:"records_file" yaml:"records_file" mapstructure:"records_file"`

	// PageSize is the number of records per page (default 6).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// DefaultSort is the sort mode a fresh query starts with (default relevance).
	DefaultSort SortMode `json:"default_sort" yaml:"default_sort" mapstructure:"default_sort"`

	// Types lists the known record types. Empty uses KnownTypes.
	Types []RecordType `json:"types" yaml:"types" mapstructure:"types"`

	// DebounceWindow collapses bursts of query edits into one run (default 200ms).
	DebounceWindow time.Duration `json:"debounce_window" yaml:"debounce_window" mapstructure:"debounce_window"`

	// ShareBaseURL is the base URL used to build share links
	// (e.g. "https://catalog.example.org/").
	ShareBaseURL string `json:"share_base_url" yaml:"share_base_url" mapstructure:"share_base_url"`

	// Reset holds the filter selection restored by a reset.
	Reset ResetDefaults `json:"reset" yaml:"reset" mapstructure:"reset"`
}

// ResetDefaults is the filter selection a reset restores. It is
// configuration, not pipeline behavior.
type ResetDefaults struct {
	// Types lists the types selected after reset. Empty selects every known type.
	Types []RecordType `json:"types" yaml:"types" mapstructure:"types"`

	// Subjects lists the subjects selected after reset. Empty means no restriction.
	Subjects []string `json:"subjects" yaml:"subjects" mapstructure:"subjects"`

	// LastYears restricts the year range to the last N years when positive.
	// Zero restores the open range.
	LastYears int `json:"last_years" yaml:"last_years" mapstructure:"last_years"`
}

// BookmarkBackend identifies where bookmarks are persisted.
type BookmarkBackend string

const (
	BookmarkFile   BookmarkBackend = "file"
	BookmarkSQLite BookmarkBackend = "sqlite"
	BookmarkRedis  BookmarkBackend = "redis"
)

// BookmarkConfig holds settings for bookmark persistence.
type BookmarkConfig struct {
	// Backend selects the persistence backend: file, sqlite, or redis.
	Backend BookmarkBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Path is the bookmark file (file backend) or database (sqlite backend).
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// RedisAddr is the host:port of the Redis server (redis backend).
	RedisAddr string `json:"redis_addr" yaml:"redis_addr" mapstructure:"redis_addr"`

	// RedisPassword authenticates with Redis. Usually supplied through
	// .secrets/redis-password rather than the config file.
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty" mapstructure:"redis_password"`

	// RedisDB selects the Redis logical database.
	RedisDB int `json:"redis_db" yaml:"redis_db" mapstructure:"redis_db"`

	// RedisKey is the Redis set holding bookmarked ids.
	RedisKey string `json:"redis_key" yaml:"redis_key" mapstructure:"redis_key"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all configuration for the research catalog.
type Config struct {
	Catalog   CatalogConfig  `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Bookmarks BookmarkConfig `json:"bookmarks" yaml:"bookmarks" mapstructure:"bookmarks"`
	Logging   LoggingConfig  `json:"logging" yaml:"logging" mapstructure:"logging"`
}

const (
	defaultDebounce     = 200 * time.Millisecond
	defaultBookmarkPath = "bookmarks.json"
	defaultRedisKey     = "research-catalog:bookmarks"
)

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = DefaultPageSize
	}
	if c.Catalog.DefaultSort == "" {
		c.Catalog.DefaultSort = SortRelevance
	}
	if len(c.Catalog.Types) == 0 {
		c.Catalog.Types = append([]RecordType(nil), KnownTypes...)
	}
	if c.Catalog.DebounceWindow <= 0 {
		c.Catalog.DebounceWindow = defaultDebounce
	}
	if c.Bookmarks.Backend == "" {
		c.Bookmarks.Backend = BookmarkFile
	}
	if c.Bookmarks.Path == "" {
		switch c.Bookmarks.Backend {
		case BookmarkSQLite:
			c.Bookmarks.Path = "bookmarks.db"
		default:
			c.Bookmarks.Path = defaultBookmarkPath
		}
	}
	if c.Bookmarks.RedisAddr == "" {
		c.Bookmarks.RedisAddr = "localhost:6379"
	}
	if c.Bookmarks.RedisKey == "" {
		c.Bookmarks.RedisKey = defaultRedisKey
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate reports configuration values that cannot be honored.
func (c Config) Validate() error {
	if !c.Catalog.DefaultSort.Valid() {
		return fmt.Errorf("unsupported default_sort %q: use relevance, date_desc, date_asc, or title", c.Catalog.DefaultSort)
	}
	switch c.Bookmarks.Backend {
	case BookmarkFile, BookmarkSQLite, BookmarkRedis:
	default:
		return fmt.Errorf("unsupported bookmark backend %q: use file, sqlite, or redis", c.Bookmarks.Backend)
	}
	if c.Catalog.Reset.LastYears < 0 {
		return fmt.Errorf("reset.last_years must not be negative, got %d", c.Catalog.Reset.LastYears)
	}
	return nil
}
