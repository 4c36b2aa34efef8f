// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/onto-extract/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.IndexConfig{Path: filepath.Join(t.TempDir(), "terms.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTerms() []types.TermDetail {
	return []types.TermDetail{
		{
			ID:          "GO:0000001",
			RootChildID: "GO:0000001",
			Label:       "mitochondrion inheritance",
			Definition:  "The distribution of mitochondria between daughter cells.",
			URI:         "http://purl.obolibrary.org/obo/GO_0000001",
		},
		{
			ID:          "GO:0006915",
			RootChildID: "GO:0008219",
			Label:       "apoptotic process",
			Definition:  "A programmed cell death process.",
			URI:         "http://purl.obolibrary.org/obo/GO_0006915",
		},
		{
			ID:    "GO:0008150",
			Label: "biological_process",
			URI:   "http://purl.obolibrary.org/obo/GO_0008150",
		},
	}
}

func TestPutAndListAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, seedTerms()))

	results, err := s.Query(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Structured-only queries come back in identifier order.
	assert.Equal(t, "GO:0000001", results[0].ID)
	assert.Equal(t, "GO:0006915", results[1].ID)
	assert.Equal(t, "GO:0008150", results[2].ID)
	assert.Equal(t, "", results[2].RootChildID)
}

func TestFullTextSearch(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, seedTerms()))

	results, err := s.Query(ctx, QueryOptions{Query: "mitochondria"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "GO:0000001", results[0].ID)

	// Matching in the label works too.
	results, err = s.Query(ctx, QueryOptions{Query: "apoptotic"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "GO:0006915", results[0].ID)
}

func TestRootChildFilter(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, seedTerms()))

	results, err := s.Query(ctx, QueryOptions{RootChild: "GO:0008219"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "GO:0006915", results[0].ID)
}

func TestPutUpsertsExisting(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, seedTerms()))

	updated := []types.TermDetail{{
		ID:    "GO:0000001",
		Label: "mitochondrion inheritance (revised)",
		URI:   "http://purl.obolibrary.org/obo/GO_0000001",
	}}
	require.NoError(t, s.Put(ctx, updated))

	results, err := s.Query(ctx, QueryOptions{Query: "revised"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	all, err := s.Query(ctx, QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3, "upsert must not duplicate rows")
}

func TestMaxResults(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, seedTerms()))

	results, err := s.Query(ctx, QueryOptions{MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.db")
	ctx := context.Background()

	s, err := Open(types.IndexConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, seedTerms()))
	require.NoError(t, s.Close())

	s2, err := Open(types.IndexConfig{Path: path})
	require.NoError(t, err)
	defer s2.Close()

	results, err := s2.Query(ctx, QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
