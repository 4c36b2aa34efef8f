// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the onto-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the onto-extract CLI.
var rootCmd = &cobra.Command{
	Use:   "onto-extract",
	Short: "Convert public ontology and pathway data to OWL, tables, and a term index",
	Long: `onto-extract converts biological ontology and pathway data from public
web sources into OWL/RDF files, flat summary tables, and a queryable local
term index.

Each conversion is a subcommand: filter-bp extracts the Gene Ontology
"biological process" subtree, pathways converts the Reactome events
hierarchy, and query searches the local term index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./onto-extract.yaml or ~/.config/onto-extract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("onto-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "onto-extract"))
		}
	}

	viper.SetEnvPrefix("ONTO_EXTRACT")
	viper.AutomaticEnv()

	viper.SetDefault("user_agent", "onto-extract/0.1")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
