// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-catalog/internal/query"
	"github.com/pdiddy/research-catalog/internal/render"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Show bookmarked records in catalog order",
	Long: `Saved shows the bookmarked records as a paginated table, in the order
they appear in the catalog. Filters do not apply.`,
	RunE: runSaved,
}

func runSaved(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	m, closeBookmarks, err := openBookmarks(context.Background(), appConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer closeBookmarks()

	page, _ := cmd.Flags().GetInt("page")
	res := query.Paginate(m.Saved(store.All()), page, appConfig.Catalog.PageSize)

	format, _ := cmd.Flags().GetString("format")
	return render.Output(os.Stdout, format, res, m)
}

func init() {
	savedCmd.Flags().Int("page", 1, "page number")
	savedCmd.Flags().String("format", "table", "output format: table, json, yaml")

	rootCmd.AddCommand(savedCmd)
}
