// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// RecordsFile is the on-disk representation of a catalog. A records file
// may also be a bare top-level list of records. JSON files parse as YAML.
type RecordsFile struct {
	Records []types.ResearchRecord `json:"records" yaml:"records"`
}

// Load reads a records file and builds a Store from it.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}
	records, err := parseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parsing records file %s: %w", path, err)
	}
	store, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("loading records file %s: %w", path, err)
	}
	return store, nil
}

// Open returns the store for path, or the sample store when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return New(Sample())
	}
	return Load(path)
}

func parseRecords(data []byte) ([]types.ResearchRecord, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	switch node.Content[0].Kind {
	case yaml.SequenceNode:
		var records []types.ResearchRecord
		if err := node.Content[0].Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case yaml.MappingNode:
		var rf RecordsFile
		if err := node.Content[0].Decode(&rf); err != nil {
			return nil, err
		}
		return rf.Records, nil
	default:
		return nil, fmt.Errorf("expected a list of records or a records: mapping")
	}
}

// WriteFile exports records to path. Files ending in .json are written as
// indented JSON; anything else as YAML.
func WriteFile(path string, records []types.ResearchRecord) error {
	rf := RecordsFile{Records: records}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(rf, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(&rf)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
