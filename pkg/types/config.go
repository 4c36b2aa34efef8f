package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "onto-extract/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FilterConfig holds settings for the biological-process extraction stage.
type FilterConfig struct {
	HTTPConfig `yaml:",inline"`

	// SourceURL is the public URL of the GO OWL file to download when
	// OntologyFile is absent.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// OntologyFile is the local path of the ontology document. When the
	// file already exists, the download is skipped.
	OntologyFile string `json:"ontology_file" yaml:"ontology_file"`

	// RootTerm is the URI of the subtree root ("biological process").
	RootTerm string `json:"root_term" yaml:"root_term"`

	// OutputTable is the path of the tab-separated term table.
	OutputTable string `json:"output_table" yaml:"output_table"`

	// OutputOWL is the path of the filtered OWL/XML subset.
	OutputOWL string `json:"output_owl" yaml:"output_owl"`

	// Manifest is the path of the YAML run manifest.
	Manifest string `json:"manifest" yaml:"manifest"`

	// IndexPath is the SQLite term index path. Empty disables indexing.
	IndexPath string `json:"index_path,omitempty" yaml:"index_path,omitempty"`

	// Workers is the worker pool size. Zero means runtime.NumCPU().
	Workers int `json:"workers" yaml:"workers"`
}

// PathwayConfig holds settings for the Reactome pathway conversion stage.
type PathwayConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIBase is the events-hierarchy endpoint; the species ID is appended.
	APIBase string `json:"api_base" yaml:"api_base"`

	// SpeciesID is the NCBI taxonomy identifier (default 9606, human).
	SpeciesID string `json:"species_id" yaml:"species_id"`

	// Output is the OWL/XML output path.
	Output string `json:"output" yaml:"output"`

	// CSVOutput is the flat hierarchy CSV path. Empty disables the CSV.
	CSVOutput string `json:"csv_output,omitempty" yaml:"csv_output,omitempty"`
}

// IndexConfig holds settings for the SQLite term index.
type IndexConfig struct {
	// Path is the database file path.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Filter  FilterConfig  `json:"filter" yaml:"filter"`
	Pathway PathwayConfig `json:"pathway" yaml:"pathway"`
	Index   IndexConfig   `json:"index" yaml:"index"`
}
