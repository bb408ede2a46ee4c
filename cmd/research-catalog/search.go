// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-catalog/internal/query"
	"github.com/pdiddy/research-catalog/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog and print one page of results",
	Long: `Search filters the catalog by free text, type, subject, and year range,
sorts the matches, and prints the requested page. The query is matched
case-insensitively against title, authors, abstract, and keywords.

Relevance ordering scores title matches 3, keyword matches 2, and abstract
matches 1. Records with equal scores keep catalog order.

Bookmarked records are marked with '*' in table output.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}

	ctrl := query.NewController(store, appConfig.Catalog, query.WithLogger(logger))
	if err := applyQueryFlags(cmd, ctrl, strings.Join(args, " ")); err != nil {
		return err
	}

	marks, closeBookmarks, err := openBookmarks(context.Background(), appConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer closeBookmarks()

	res, _ := ctrl.Run()
	format, _ := cmd.Flags().GetString("format")
	if err := render.Output(os.Stdout, format, res, marks); err != nil {
		return err
	}
	return saveStateFlag(cmd, ctrl)
}

func init() {
	addQueryFlags(searchCmd)
	searchCmd.Flags().String("format", "table", "output format: table, json, yaml")

	rootCmd.AddCommand(searchCmd)
}
