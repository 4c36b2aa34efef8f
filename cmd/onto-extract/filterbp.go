package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/onto-extract/internal/gofilter"
	"github.com/pdiddy/onto-extract/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultSourceURL = "http://purl.obolibrary.org/obo/go/go-basic.owl"
)

var filterBPCmd = &cobra.Command{
	Use:   "filter-bp",
	Short: "Extract the GO biological-process subtree",
	Long: `Filter-bp downloads the Gene Ontology go-basic.owl file (skipped when
already present locally), walks the subclass hierarchy below the
"biological process" root, and writes a tab-separated term table, a
filtered OWL/XML subset, and a YAML run manifest. With --index the terms
are also stored in a SQLite index searchable via the query subcommand.`,
	RunE: runFilterBP,
}

func init() {
	filterBPCmd.Flags().String("source-url", defaultSourceURL, "ontology download URL")
	filterBPCmd.Flags().String("owl-file", "go-basic.owl", "local ontology file path")
	filterBPCmd.Flags().String("root-term", gofilter.DefaultRootTerm, "subtree root term URI")
	filterBPCmd.Flags().String("output", "biological_process_terms.txt", "term table output path")
	filterBPCmd.Flags().String("owl-output", "biological_process_go.owl", "OWL subset output path")
	filterBPCmd.Flags().String("manifest", "biological_process_run.yaml", "run manifest output path")
	filterBPCmd.Flags().String("index", "", "SQLite term index path (empty disables indexing)")
	filterBPCmd.Flags().Int("workers", 0, "worker pool size (default: number of CPUs)")
	filterBPCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(filterBPCmd)
}

func runFilterBP(cmd *cobra.Command, args []string) error {
	sourceURL, _ := cmd.Flags().GetString("source-url")
	owlFile, _ := cmd.Flags().GetString("owl-file")
	rootTerm, _ := cmd.Flags().GetString("root-term")
	output, _ := cmd.Flags().GetString("output")
	owlOutput, _ := cmd.Flags().GetString("owl-output")
	manifest, _ := cmd.Flags().GetString("manifest")
	indexPath, _ := cmd.Flags().GetString("index")
	workers, _ := cmd.Flags().GetInt("workers")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.FilterConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("user_agent"),
		},
		SourceURL:    sourceURL,
		OntologyFile: owlFile,
		RootTerm:     rootTerm,
		OutputTable:  output,
		OutputOWL:    owlOutput,
		Manifest:     manifest,
		IndexPath:    indexPath,
		Workers:      workers,
	}

	client := &http.Client{Timeout: cfg.Timeout}
	return gofilter.Run(cfg, client, os.Stdout)
}
