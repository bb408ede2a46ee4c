// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-catalog/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- Store ---

func TestNewPreservesOrder(t *testing.T) {
	store, err := New(Sample())
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 4)
	for i, r := range all {
		assert.Equal(t, i+1, r.ID)
	}
	assert.Equal(t, 4, store.Len())
}

func TestNewRejectsBadIDs(t *testing.T) {
	tests := []struct {
		name    string
		records []types.ResearchRecord
		errMsg  string
	}{
		{"zero id", []types.ResearchRecord{{ID: 0, Title: "A"}}, "positive"},
		{"negative id", []types.ResearchRecord{{ID: -3, Title: "A"}}, "positive"},
		{"duplicate id", []types.ResearchRecord{{ID: 1, Title: "A"}, {ID: 1, Title: "B"}}, "duplicate id 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store, err := New(Sample())
	require.NoError(t, err)

	all := store.All()
	all[0], all[1] = all[1], all[0]

	again := store.All()
	assert.Equal(t, 1, again[0].ID)
	assert.Equal(t, 2, again[1].ID)
}

func TestStoreIsolatedFromInput(t *testing.T) {
	records := Sample()
	store, err := New(records)
	require.NoError(t, err)

	records[0].Title = "changed"
	records[0].Subjects[0] = "changed"

	r, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Neural Network Optimization Techniques", r.Title)
	assert.Equal(t, "Artificial Intelligence", r.Subjects[0])
}

func TestGet(t *testing.T) {
	store, err := New(Sample())
	require.NoError(t, err)

	r, err := store.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Quantum Encryption Methods", r.Title)

	_, err = store.Get(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSelect(t *testing.T) {
	store, err := New(Sample())
	require.NoError(t, err)

	got := store.Select(func(r types.ResearchRecord) bool { return r.Year == 2023 })
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestFacets(t *testing.T) {
	store, err := New(Sample())
	require.NoError(t, err)

	assert.Equal(t, []types.RecordType{types.TypeJournal, types.TypeConference, types.TypeBook}, store.Types())
	assert.Contains(t, store.Subjects(), "Quantum")
	assert.Len(t, store.Subjects(), 7)

	min, max := store.YearSpan()
	assert.Equal(t, 2023, min)
	assert.Equal(t, 2024, max)
}

// --- Load ---

func TestLoadYAMLMapping(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "records.yaml", `records:
  - id: 10
    title: Graph Neural Networks
    authors: "Doe, A."
    year: 2021
    type: Journal
    subjects: [AI]
    keywords: [GNN, Graphs]
  - id: 11
    title: Compilers
    year: 1986
    type: Book
`)

	store, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	r, err := store.Get(10)
	require.NoError(t, err)
	assert.Equal(t, types.TypeJournal, r.Type)
	assert.Equal(t, []string{"GNN", "Graphs"}, r.Keywords)
}

func TestLoadJSONList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "records.json",
		`[{"id": 7, "title": "Edge AI", "year": 2022, "type": "Conference", "subjects": ["IoT"]}]`)

	store, err := Load(path)
	require.NoError(t, err)
	r, err := store.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "Edge AI", r.Title)
	assert.Equal(t, types.TypeConference, r.Type)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading records file")

	bad := writeFile(t, dir, "bad.yaml", "records: [unterminated")
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing records file")

	scalar := writeFile(t, dir, "scalar.yaml", "just a string")
	_, err = Load(scalar)
	require.Error(t, err)

	dup := writeFile(t, dir, "dup.yaml", "- id: 1\n- id: 1\n")
	_, err = Load(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "")

	store, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestOpenWithoutPathUsesSample(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())
}

func TestWriteFileRoundTrip(t *testing.T) {
	for _, name := range []string{"export.yaml", "export.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(path, Sample()))

			store, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Sample(), store.All())
		})
	}
}
