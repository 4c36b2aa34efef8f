// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reactome fetches the Reactome events hierarchy for a species
// and converts its pathways to an OWL class hierarchy.
package reactome

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pdiddy/onto-extract/internal/httputil"
	"github.com/pdiddy/onto-extract/pkg/types"
)

// DefaultAPIBase is the Reactome events-hierarchy endpoint; the species
// taxonomy ID is appended.
const DefaultAPIBase = "https://reactome.org/ContentService/data/eventsHierarchy/"

// DefaultSpeciesID is the NCBI taxonomy ID for Homo sapiens.
const DefaultSpeciesID = "9606"

// Pathway is one node of the Reactome events hierarchy.
type Pathway struct {
	StID     string    `json:"stId"`
	DBID     int64     `json:"dbId"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Children []Pathway `json:"children"`
}

// Identifier returns the stable ID of the node, preferring stId over
// the numeric dbId. Empty when the node carries neither.
func (p Pathway) Identifier() string {
	if p.StID != "" {
		return p.StID
	}
	if p.DBID != 0 {
		return strconv.FormatInt(p.DBID, 10)
	}
	return ""
}

// isPathway reports whether the node type is included in the output.
// Other event types (Reaction, Set, ...) are filtered but their
// children are still visited.
func (p Pathway) isPathway() bool {
	return p.Type == "Pathway" || p.Type == "TopLevelPathway"
}

// Fetch retrieves the events hierarchy forest for the configured
// species. Rate-limit responses are retried with backoff; any other
// failure is fatal to the run.
func Fetch(ctx context.Context, client *http.Client, cfg types.PathwayConfig) ([]Pathway, error) {
	url := cfg.APIBase + cfg.SpeciesID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	var forest []Pathway
	if err := json.NewDecoder(resp.Body).Decode(&forest); err != nil {
		return nil, fmt.Errorf("parsing events hierarchy: %w", err)
	}
	return forest, nil
}

// Count returns the total number of nodes in the forest, nested
// children included.
func Count(forest []Pathway) int {
	n := len(forest)
	for _, p := range forest {
		n += Count(p.Children)
	}
	return n
}
