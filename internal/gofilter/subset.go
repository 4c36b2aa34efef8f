// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"runtime"
	"sync"

	"github.com/pdiddy/onto-extract/internal/rdf"
)

// BuildSubset copies into a new graph every triple whose subject is a
// member of terms, plus every triple whose object is a member and whose
// subject is also a member, so relationship edges never pull in outside
// subjects. Triples are collected one task per term and merged with set
// semantics. Namespace bindings are copied from the source, with owl,
// obo, rdfs and rdf always bound.
func BuildSubset(g *rdf.Graph, terms map[rdf.Term]struct{}, workers int) *rdf.Graph {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := rdf.NewGraph()
	out.Bind("owl", rdf.NSOWL)
	out.Bind("obo", rdf.NSOBO)
	out.Bind("rdfs", rdf.NSRDFS)
	out.Bind("rdf", rdf.NSRDF)
	for _, b := range g.Bindings() {
		if out.Namespace(b.Prefix) == "" {
			out.Bind(b.Prefix, b.Namespace)
		}
	}

	tasks := make(chan rdf.Term)
	collected := make(chan []rdf.Triple)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for term := range tasks {
				collected <- collectTriples(g, term, terms)
			}
		}()
	}

	go func() {
		for term := range terms {
			tasks <- term
		}
		close(tasks)
		wg.Wait()
		close(collected)
	}()

	for batch := range collected {
		for _, t := range batch {
			out.Add(t)
		}
	}
	return out
}

// collectTriples gathers the triples touching one term: all with the
// term as subject, and intra-set relationship edges with it as object.
func collectTriples(g *rdf.Graph, term rdf.Term, terms map[rdf.Term]struct{}) []rdf.Triple {
	triples := g.Triples(&term, nil, nil)

	for _, t := range g.Triples(nil, nil, &term) {
		if _, ok := terms[t.Subject]; ok {
			triples = append(triples, t)
		}
	}
	return triples
}
