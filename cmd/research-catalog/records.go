// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-catalog/internal/catalog"
	"github.com/pdiddy/research-catalog/internal/render"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect and export the record catalog",
}

// --- show subcommand ---

var recordsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print every field of one record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsShow,
}

func runRecordsShow(cmd *cobra.Command, args []string) error {
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
	m, closeBookmarks, err := openBookmarks(context.Background(), appConfig, os.Stderr)
	if err != nil {
		return err
	}
	defer closeBookmarks()

	render.Detail(os.Stdout, rec, m.Has(id))
	return nil
}

// --- facets subcommand ---

var recordsFacetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the types, subjects, and year span present in the catalog",
	RunE:  runRecordsFacets,
}

// facets summarizes the filterable values of a catalog.
type facets struct {
	Records  int      `yaml:"records"`
	Types    []string `yaml:"types"`
	Subjects []string `yaml:"subjects"`
	YearMin  int      `yaml:"year_min"`
	YearMax  int      `yaml:"year_max"`
}

func runRecordsFacets(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	f := facets{
		Records:  store.Len(),
		Types:    typeStrings(store.Types()),
		Subjects: store.Subjects(),
	}
	f.YearMin, f.YearMax = store.YearSpan()

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(f)
}

// --- export subcommand ---

var recordsExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the catalog to a YAML or JSON records file",
	Long: `Export writes every record to path. Files ending in .json are written
as JSON; anything else as YAML. The output can be loaded back with --records.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsExport,
}

func runRecordsExport(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	path := strings.TrimSpace(args[0])
	if err := catalog.WriteFile(path, store.All()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", store.Len(), path)
	return nil
}

func init() {
	recordsCmd.AddCommand(recordsShowCmd)
	recordsCmd.AddCommand(recordsFacetsCmd)
	recordsCmd.AddCommand(recordsExportCmd)

	rootCmd.AddCommand(recordsCmd)
}
