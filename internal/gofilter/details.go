// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pdiddy/onto-extract/internal/rdf"
	"github.com/pdiddy/onto-extract/pkg/types"
)

const detailProgressEvery = 500

// ExtractDetails produces one record per term: label (or "No label"),
// definition (or empty), and the nearest root child. One independent
// task per term on a fixed-size pool; tasks only share a progress
// counter. Records are returned sorted by term identifier.
func ExtractDetails(g *rdf.Graph, terms map[rdf.Term]struct{}, root rdf.Term, workers int, progress io.Writer) []types.TermDetail {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tasks := make(chan rdf.Term)
	results := make(chan types.TermDetail)
	var done atomic.Int64
	total := len(terms)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for term := range tasks {
				results <- extractOne(g, term, root)
				if n := done.Add(1); progress != nil &&
					(n%detailProgressEvery == 0 || n == int64(total)) {
					fmt.Fprintf(progress, "processed %d/%d terms...\n", n, total)
				}
			}
		}()
	}

	go func() {
		for term := range terms {
			tasks <- term
		}
		close(tasks)
		wg.Wait()
		close(results)
	}()

	details := make([]types.TermDetail, 0, total)
	for d := range results {
		details = append(details, d)
	}

	sort.Slice(details, func(i, j int) bool { return details[i].ID < details[j].ID })
	return details
}

func extractOne(g *rdf.Graph, term, root rdf.Term) types.TermDetail {
	d := types.TermDetail{
		ID:    CURIE(term.Value),
		URI:   term.Value,
		Label: "No label",
	}

	if labels := g.Triples(&term, &rdfsLabel, nil); len(labels) > 0 {
		d.Label = labels[0].Object.Value
	}
	if defs := g.Triples(&term, &definition, nil); len(defs) > 0 {
		d.Definition = defs[0].Object.Value
	}
	if child, ok := NearestRootChild(g, term, root); ok {
		d.RootChildID = CURIE(child.Value)
	}
	return d
}

// whitespace control characters are collapsed so a definition never
// breaks the tab-separated layout.
var fieldSanitizer = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ")

// WriteTable writes the tab-separated term table:
// GO_ID, GO_BP_ID, Label, Definition, URI.
func WriteTable(w io.Writer, details []types.TermDetail) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "GO_ID\tGO_BP_ID\tLabel\tDefinition\tURI"); err != nil {
		return err
	}
	for _, d := range details {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.RootChildID, d.Label, fieldSanitizer.Replace(d.Definition), d.URI)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
