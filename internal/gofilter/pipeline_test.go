// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/onto-extract/internal/index"
	"github.com/pdiddy/onto-extract/pkg/types"
)

const testOntology = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:obo="http://purl.obolibrary.org/obo/">
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/GO_0008150">
    <rdfs:label>biological_process</rdfs:label>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/GO_0000001">
    <rdfs:label>mitochondrion inheritance</rdfs:label>
    <obo:IAO_0000115>The distribution of mitochondria.</obo:IAO_0000115>
    <rdfs:subClassOf rdf:resource="http://purl.obolibrary.org/obo/GO_0008150"/>
  </owl:Class>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/GO_0000002">
    <rdfs:subClassOf rdf:resource="http://purl.obolibrary.org/obo/GO_0008150"/>
  </owl:Class>
</rdf:RDF>`

func pipelineConfig(t *testing.T, sourceURL string) types.FilterConfig {
	t.Helper()
	dir := t.TempDir()
	return types.FilterConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		SourceURL:    sourceURL,
		OntologyFile: filepath.Join(dir, "go-basic.owl"),
		RootTerm:     DefaultRootTerm,
		OutputTable:  filepath.Join(dir, "terms.txt"),
		OutputOWL:    filepath.Join(dir, "subset.owl"),
		Manifest:     filepath.Join(dir, "run.yaml"),
		IndexPath:    filepath.Join(dir, "terms.db"),
		Workers:      2,
	}
}

func TestRunEndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(testOntology))
	}))
	defer ts.Close()

	cfg := pipelineConfig(t, ts.URL)
	var out bytes.Buffer
	require.NoError(t, Run(cfg, ts.Client(), &out))

	// Term table: header plus three rows, sorted, direct children
	// reporting themselves as nearest root child.
	data, err := os.ReadFile(cfg.OutputTable)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "GO:0000001\tGO:0000001\tmitochondrion inheritance\t"))
	assert.True(t, strings.HasPrefix(lines[2], "GO:0000002\tGO:0000002\tNo label\t"))
	assert.True(t, strings.HasPrefix(lines[3], "GO:0008150\t\tbiological_process\t"))

	// OWL subset exists and mentions all three classes.
	owl, err := os.ReadFile(cfg.OutputOWL)
	require.NoError(t, err)
	for _, id := range []string{"GO_0008150", "GO_0000001", "GO_0000002"} {
		assert.Contains(t, string(owl), id)
	}

	// Manifest records the run.
	var manifest types.RunManifest
	manifestData, err := os.ReadFile(cfg.Manifest)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(manifestData, &manifest))
	assert.Equal(t, 3, manifest.Terms)
	assert.Equal(t, ts.URL, manifest.SourceURL)
	assert.Greater(t, manifest.SourceTriples, 0)

	// Index is queryable.
	store, err := index.Open(types.IndexConfig{Path: cfg.IndexPath})
	require.NoError(t, err)
	defer store.Close()
	results, err := store.Query(context.Background(), index.QueryOptions{Query: "mitochondrion"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "GO:0000001", results[0].ID)
}

func TestRunSkipsDownloadWhenFilePresent(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(testOntology))
	}))
	defer ts.Close()

	cfg := pipelineConfig(t, ts.URL)
	cfg.IndexPath = ""
	require.NoError(t, os.WriteFile(cfg.OntologyFile, []byte(testOntology), 0o644))

	var out bytes.Buffer
	require.NoError(t, Run(cfg, ts.Client(), &out))

	assert.Zero(t, calls, "download must be skipped when the file exists")
	assert.Contains(t, out.String(), "skipping download")
}

func TestRunDownloadFailureIsFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	cfg := pipelineConfig(t, ts.URL)
	var out bytes.Buffer
	err := Run(cfg, ts.Client(), &out)
	require.Error(t, err)

	// Nothing partial is written.
	_, statErr := os.Stat(cfg.OutputTable)
	assert.True(t, os.IsNotExist(statErr))
}
