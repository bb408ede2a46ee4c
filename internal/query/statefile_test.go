// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-catalog/pkg/types"
)

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	want := types.DefaultQueryState(types.KnownTypes, 4)
	want.Query = "Quantum"
	want.Sort = types.SortTitle
	want.Filters.Subjects = map[string]bool{"Security": true, "Quantum": true}
	want.Filters.YearFrom = 2020
	want.Page = 3

	require.NoError(t, WriteStateFile(path, want))

	got, err := ReadStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadStateFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadStateFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading state file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sort: [oops"), 0o644))
	_, err = ReadStateFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing state file")

	badSort := filepath.Join(dir, "sort.yaml")
	require.NoError(t, os.WriteFile(badSort, []byte("sort: newest\n"), 0o644))
	_, err = ReadStateFile(badSort)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort")
}

func TestStateFileDefaults(t *testing.T) {
	st, err := StateFile{YearFrom: 1900, YearTo: 2100}.ToState()
	require.NoError(t, err)
	assert.Equal(t, types.SortRelevance, st.Sort)
	assert.Equal(t, 1, st.Page)
	assert.NotNil(t, st.Filters.Types)
	assert.NotNil(t, st.Filters.Subjects)
}
