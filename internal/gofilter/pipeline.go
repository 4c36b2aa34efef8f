// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/onto-extract/internal/httputil"
	"github.com/pdiddy/onto-extract/internal/index"
	"github.com/pdiddy/onto-extract/internal/rdf"
	"github.com/pdiddy/onto-extract/pkg/types"
)

// Run executes the full extraction: download the ontology when the
// local file is absent, parse it, walk the root's descendants, extract
// per-term records, and write the term table, the OWL subset, and the
// run manifest. When cfg.IndexPath is set the records are also stored
// in the SQLite term index. Any failure aborts the run; there is no
// partial-result recovery.
func Run(cfg types.FilterConfig, client *http.Client, w io.Writer) error {
	if _, err := os.Stat(cfg.OntologyFile); err == nil {
		fmt.Fprintf(w, "found existing %s, skipping download\n", cfg.OntologyFile)
	} else {
		fmt.Fprintf(w, "downloading %s...\n", cfg.SourceURL)
		if err := httputil.DownloadFile(client, cfg.SourceURL, cfg.OntologyFile, cfg.UserAgent); err != nil {
			return fmt.Errorf("downloading ontology: %w", err)
		}
	}

	f, err := os.Open(cfg.OntologyFile)
	if err != nil {
		return fmt.Errorf("opening ontology file: %w", err)
	}
	g, err := rdf.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cfg.OntologyFile, err)
	}
	fmt.Fprintf(w, "loaded %d triples\n", g.Len())

	root := rdf.IRI(cfg.RootTerm)
	fmt.Fprintln(w, "walking subclass hierarchy...")
	terms := Descendants(g, root, cfg.Workers, w)
	fmt.Fprintf(w, "found %d terms\n", len(terms))

	fmt.Fprintln(w, "extracting term details...")
	details := ExtractDetails(g, terms, root, cfg.Workers, w)

	if err := writeTableFile(cfg.OutputTable, details); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %d terms to %s\n", len(details), cfg.OutputTable)

	fmt.Fprintln(w, "building OWL subset...")
	subset := BuildSubset(g, terms, cfg.Workers)
	if err := writeOWLFile(cfg.OutputOWL, subset); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved OWL subset to %s (%d triples)\n", cfg.OutputOWL, subset.Len())

	if cfg.IndexPath != "" {
		if err := writeIndex(cfg, details); err != nil {
			return fmt.Errorf("indexing terms: %w", err)
		}
		fmt.Fprintf(w, "indexed %d terms in %s\n", len(details), cfg.IndexPath)
	}

	if cfg.Manifest != "" {
		manifest := types.RunManifest{
			SourceURL:     cfg.SourceURL,
			OntologyFile:  cfg.OntologyFile,
			RootTerm:      cfg.RootTerm,
			SourceTriples: g.Len(),
			Terms:         len(details),
			SubsetTriples: subset.Len(),
			OutputTable:   cfg.OutputTable,
			OutputOWL:     cfg.OutputOWL,
			GeneratedAt:   time.Now().UTC(),
		}
		if err := writeManifest(cfg.Manifest, manifest); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote manifest %s\n", cfg.Manifest)
	}

	return nil
}

func writeTableFile(path string, details []types.TermDetail) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteTable(f, details); err != nil {
		f.Close()
		return fmt.Errorf("writing term table: %w", err)
	}
	return f.Close()
}

func writeOWLFile(path string, g *rdf.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := rdf.Serialize(g, f); err != nil {
		f.Close()
		return fmt.Errorf("serializing subset: %w", err)
	}
	return f.Close()
}

func writeIndex(cfg types.FilterConfig, details []types.TermDetail) error {
	store, err := index.Open(types.IndexConfig{Path: cfg.IndexPath})
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Put(context.Background(), details)
}

func writeManifest(path string, manifest types.RunManifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
