// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// setConfigDefaults registers every config key with its default so that
// environment variables are picked up by Unmarshal.
func setConfigDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("catalog.records_file", d.Catalog.RecordsFile)
	v.SetDefault("catalog.page_size", d.Catalog.PageSize)
	v.SetDefault("catalog.default_sort", string(d.Catalog.DefaultSort))
	v.SetDefault("catalog.types", typeStrings(d.Catalog.Types))
	v.SetDefault("catalog.debounce_window", d.Catalog.DebounceWindow)
	v.SetDefault("catalog.share_base_url", "")
	v.SetDefault("catalog.reset.last_years", 0)

	v.SetDefault("bookmarks.backend", string(d.Bookmarks.Backend))
	v.SetDefault("bookmarks.path", "")
	v.SetDefault("bookmarks.redis_addr", d.Bookmarks.RedisAddr)
	v.SetDefault("bookmarks.redis_password", "")
	v.SetDefault("bookmarks.redis_db", 0)
	v.SetDefault("bookmarks.redis_key", d.Bookmarks.RedisKey)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// loadConfig resolves the configuration from v (file, environment, and
// bound flags), fills remaining defaults, and validates the result.
func loadConfig(v *viper.Viper) (types.Config, error) {
	setConfigDefaults(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func typeStrings(ts []types.RecordType) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
