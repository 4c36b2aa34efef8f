// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/onto-extract/internal/rdf"
	"github.com/pdiddy/onto-extract/internal/reactome"
	"github.com/pdiddy/onto-extract/pkg/types"
)

var pathwaysCmd = &cobra.Command{
	Use:   "pathways",
	Short: "Convert the Reactome pathway hierarchy to OWL",
	Long: `Pathways fetches the Reactome events hierarchy for a species and
converts Pathway and TopLevelPathway nodes into an OWL class hierarchy.
With --csv a flat id,parent_id,name table is also written, where
parent_id is the top-level ancestor of each pathway.`,
	RunE: runPathways,
}

func init() {
	pathwaysCmd.Flags().String("species-id", reactome.DefaultSpeciesID, "NCBI taxonomy ID for species")
	pathwaysCmd.Flags().String("output", "reactome_pathways.owl", "output OWL file path")
	pathwaysCmd.Flags().String("csv", "", "flat hierarchy CSV output path (empty disables)")
	pathwaysCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(pathwaysCmd)
}

func runPathways(cmd *cobra.Command, args []string) error {
	speciesID, _ := cmd.Flags().GetString("species-id")
	output, _ := cmd.Flags().GetString("output")
	csvOutput, _ := cmd.Flags().GetString("csv")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cfg := types.PathwayConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("user_agent"),
		},
		APIBase:   reactome.DefaultAPIBase,
		SpeciesID: speciesID,
		Output:    output,
		CSVOutput: csvOutput,
	}

	client := &http.Client{Timeout: cfg.Timeout}

	fmt.Printf("fetching pathways for species %s...\n", cfg.SpeciesID)
	forest, err := reactome.Fetch(context.Background(), client, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("found %d top-level pathways (%d total)\n", len(forest), reactome.Count(forest))

	g := reactome.Convert(forest)
	fmt.Printf("converted to %d triples\n", g.Len())

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output, err)
	}
	if err := rdf.Serialize(g, f); err != nil {
		f.Close()
		return fmt.Errorf("serializing OWL: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("saved OWL file to %s\n", cfg.Output)

	if cfg.CSVOutput != "" {
		cf, err := os.Create(cfg.CSVOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.CSVOutput, err)
		}
		if err := reactome.WriteCSV(cf, forest); err != nil {
			cf.Close()
			return fmt.Errorf("writing CSV: %w", err)
		}
		if err := cf.Close(); err != nil {
			return err
		}
		fmt.Printf("saved hierarchy CSV to %s\n", cfg.CSVOutput)
	}
	return nil
}
