// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/onto-extract/internal/index"
	"github.com/pdiddy/onto-extract/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [search terms]",
	Short: "Search the local term index",
	Long: `Query searches the SQLite term index written by filter-bp --index,
using FTS5 full-text search over labels and definitions. Without search
terms all indexed terms are listed in identifier order.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("index", "terms.db", "SQLite term index path")
	queryCmd.Flags().String("root-child", "", "filter by nearest-root-child identifier")
	queryCmd.Flags().Int("max-results", 0, "maximum number of results (default 20)")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	indexPath, _ := cmd.Flags().GetString("index")
	rootChild, _ := cmd.Flags().GetString("root-child")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	store, err := index.Open(types.IndexConfig{Path: indexPath, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer store.Close()

	opts := index.QueryOptions{
		Query:      strings.Join(args, " "),
		RootChild:  rootChild,
		MaxResults: maxResults,
	}

	results, err := store.Query(context.Background(), opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no matching terms")
		return nil
	}

	for _, d := range results {
		fmt.Printf("%s\t%s\t%s\n", d.ID, d.RootChildID, d.Label)
		if d.Definition != "" {
			fmt.Printf("\t%s\n", d.Definition)
		}
	}
	return nil
}
