// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// StateFile is the on-disk representation of a query state. A browsing
// session can be saved and resumed later.
type StateFile struct {
	Query    string             `yaml:"query,omitempty"`
	Sort     types.SortMode     `yaml:"sort"`
	Types    []types.RecordType `yaml:"types"`
	Subjects []string           `yaml:"subjects,omitempty"`
	YearFrom int                `yaml:"year_from"`
	YearTo   int                `yaml:"year_to"`
	Page     int                `yaml:"page"`
	PageSize int                `yaml:"page_size"`
	SavedAt  time.Time          `yaml:"saved_at"`
}

// WriteStateFile saves s to path as YAML.
func WriteStateFile(path string, s types.QueryState) error {
	sf := StateFile{
		Query:    s.Query,
		Sort:     s.Sort,
		Types:    s.Filters.TypeList(),
		Subjects: s.Filters.SubjectList(),
		YearFrom: s.Filters.YearFrom,
		YearTo:   s.Filters.YearTo,
		Page:     s.Page,
		PageSize: s.PageSize,
		SavedAt:  time.Now().UTC(),
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling state file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadStateFile loads a previously saved state from path.
func ReadStateFile(path string) (types.QueryState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.QueryState{}, fmt.Errorf("reading state file: %w", err)
	}
	var sf StateFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return types.QueryState{}, fmt.Errorf("parsing state file: %w", err)
	}
	return sf.ToState()
}

// ToState converts a StateFile back into a QueryState.
func (sf StateFile) ToState() (types.QueryState, error) {
	mode := sf.Sort
	if mode == "" {
		mode = types.SortRelevance
	}
	if !mode.Valid() {
		return types.QueryState{}, fmt.Errorf("invalid sort %q", sf.Sort)
	}

	s := types.QueryState{
		Query: sf.Query,
		Sort:  mode,
		Filters: types.Filters{
			Types:    make(map[types.RecordType]bool, len(sf.Types)),
			Subjects: make(map[string]bool, len(sf.Subjects)),
			YearFrom: sf.YearFrom,
			YearTo:   sf.YearTo,
		},
		Page:     sf.Page,
		PageSize: sf.PageSize,
	}
	for _, t := range sf.Types {
		s.Filters.Types[t] = true
	}
	for _, subj := range sf.Subjects {
		s.Filters.Subjects[subj] = true
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s, nil
}
