// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Toggle and list bookmarked records",
	Long: `Bookmark manages the persistent set of saved records. The backend is
chosen by bookmarks.backend in the config: file (JSON list of ids), sqlite,
or redis. A failed save is reported as a warning; the toggle still applies
for the rest of the session.`,
}

// --- toggle subcommand ---

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Bookmark a record, or remove its bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkToggle,
}

func runBookmarkToggle(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}

	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	rec, err := store.Get(id)
	if err != nil {
		return err
	}

	ctx := context.Background()
	m, closeBookmarks, err := openBookmarks(ctx, appConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer closeBookmarks()

	on, err := m.Toggle(ctx, id)
	if err != nil && !notifyPersistence(os.Stderr, err) {
		return err
	}
	if on {
		fmt.Printf("Saved %d: %s\n", id, rec.Title)
	} else {
		fmt.Printf("Removed %d: %s\n", id, rec.Title)
	}
	return nil
}

// --- list subcommand ---

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked record ids",
	RunE:  runBookmarkList,
}

func runBookmarkList(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	m, closeBookmarks, err := openBookmarks(context.Background(), appConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer closeBookmarks()

	ids := m.IDs()
	if len(ids) == 0 {
		fmt.Println("No bookmarks.")
		return nil
	}
	for _, id := range ids {
		title := "(not in catalog)"
		if rec, err := store.Get(id); err == nil {
			title = rec.Title
		}
		fmt.Printf("%-6d  %s\n", id, title)
	}
	fmt.Printf("\n%d bookmarks\n", len(ids))
	return nil
}

func init() {
	bookmarkCmd.AddCommand(bookmarkToggleCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)

	rootCmd.AddCommand(bookmarkCmd)
}
