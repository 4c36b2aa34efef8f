// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TermDetail is the per-term record produced by the extraction stage.
type TermDetail struct {
	// ID is the CURIE form of the term identifier (e.g. "GO:0008150").
	ID string `json:"id" yaml:"id"`

	// RootChildID is the identifier of the direct child of the subtree
	// root lying on a path from this term back to the root. Empty for
	// the root itself.
	RootChildID string `json:"root_child_id,omitempty" yaml:"root_child_id,omitempty"`

	// Label is the rdfs:label of the term, or "No label".
	Label string `json:"label" yaml:"label"`

	// Definition is the textual definition annotation, possibly empty.
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`

	// URI is the full term URI.
	URI string `json:"uri" yaml:"uri"`
}

// RunManifest records the provenance of one extraction run. It is written
// as YAML next to the outputs.
type RunManifest struct {
	SourceURL     string    `json:"source_url" yaml:"source_url"`
	OntologyFile  string    `json:"ontology_file" yaml:"ontology_file"`
	RootTerm      string    `json:"root_term" yaml:"root_term"`
	SourceTriples int       `json:"source_triples" yaml:"source_triples"`
	Terms         int       `json:"terms" yaml:"terms"`
	SubsetTriples int       `json:"subset_triples" yaml:"subset_triples"`
	OutputTable   string    `json:"output_table" yaml:"output_table"`
	OutputOWL     string    `json:"output_owl" yaml:"output_owl"`
	GeneratedAt   time.Time `json:"generated_at" yaml:"generated_at"`
}
