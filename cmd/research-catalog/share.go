// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-catalog/internal/render"
)

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print a shareable link to a record",
	Long: `Share prints <base>/details.html?id=<id> for a record in the catalog.
The base URL comes from --base or catalog.share_base_url.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func runShare(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	if _, err := store.Get(id); err != nil {
		return err
	}

	base, _ := cmd.Flags().GetString("base")
	if base == "" {
		base = appConfig.Catalog.ShareBaseURL
	}
	if base == "" {
		return fmt.Errorf("no share base URL: set catalog.share_base_url or pass --base")
	}

	link, err := render.ShareLink(base, id)
	if err != nil {
		return err
	}
	fmt.Println(link)
	return nil
}

func init() {
	shareCmd.Flags().String("base", "", "base URL for share links")

	rootCmd.AddCommand(shareCmd)
}
