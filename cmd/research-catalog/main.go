// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-catalog CLI. The CLI is
// the controller and presentation layer over the query pipeline: each
// subcommand builds a query.Controller from flags or an interactive
// session and renders its results.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/research-catalog/internal/logging"
	"github.com/pdiddy/research-catalog/internal/secrets"
	"github.com/pdiddy/research-catalog/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds credential files such as redis-password.
const secretsDir = ".secrets/"

// appConfig is the resolved configuration for the running command.
var appConfig = types.DefaultConfig()

// logger is built from appConfig.Logging before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the research-catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "research-catalog",
	Short: "Search, filter, sort, and bookmark a catalog of research records",
	Long: `research-catalog browses a collection of research records (journal
articles, conference papers, books). Records are searched by free text,
filtered by type, subject, and year, sorted by relevance, date, or title,
and shown one page at a time. Bookmarks persist across runs in a JSON
file, a SQLite database, or Redis.

Without a records file the built-in sample catalog is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		logger = l

		s, err := secrets.Load(secretsDir, logger)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			logger.Info("loaded secrets", zap.Strings("keys", s.Keys()))
		}
		s.ApplyBookmarks(&cfg.Bookmarks)
		appConfig = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./research-catalog.yaml or ~/.config/research-catalog/research-catalog.yaml)")
	flags.String("records", "", "YAML or JSON records file (default: built-in sample records)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("catalog.records_file", flags.Lookup("records"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-catalog"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
