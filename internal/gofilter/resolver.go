// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gofilter extracts the "biological process" subtree of the Gene
// Ontology from a parsed OWL graph and writes a term table, a filtered
// OWL subset, and an optional SQLite term index.
package gofilter

import (
	"strings"

	"github.com/pdiddy/onto-extract/internal/rdf"
)

// DefaultRootTerm is the GO "biological process" class.
const DefaultRootTerm = rdf.NSOBO + "GO_0008150"

// TermPrefix is the URI namespace of GO term classes. Subjects outside
// this namespace are never treated as terms.
const TermPrefix = rdf.NSOBO + "GO_"

// definitionProperty is the IAO "textual definition" annotation.
const definitionProperty = rdf.NSOBO + "IAO_0000115"

var (
	subClassOf = rdf.IRI(rdf.NSRDFS + "subClassOf")
	rdfsLabel  = rdf.IRI(rdf.NSRDFS + "label")
	definition = rdf.IRI(definitionProperty)
)

// CURIE converts a term URI to its compact form:
// http://purl.obolibrary.org/obo/GO_0008150 becomes GO:0008150.
func CURIE(uri string) string {
	if strings.HasPrefix(uri, rdf.NSOBO) {
		id := uri[len(rdf.NSOBO):]
		if i := strings.IndexByte(id, '_'); i >= 0 {
			return id[:i] + ":" + id[i+1:]
		}
		return id
	}
	return uri
}

// isTerm reports whether t is a named GO term.
func isTerm(t rdf.Term) bool {
	return t.IsIRI() && strings.HasPrefix(t.Value, TermPrefix)
}

// DirectSubclasses returns the named GO terms that are direct subclasses
// of parent, either through a plain rdfs:subClassOf edge or through an
// anonymous restriction node carrying any triple whose object is parent.
// Pure query; the returned slice follows the graph's insertion order.
func DirectSubclasses(g *rdf.Graph, parent rdf.Term) []rdf.Term {
	var out []rdf.Term
	seen := make(map[rdf.Term]struct{})

	add := func(t rdf.Term) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, t := range g.Triples(nil, &subClassOf, nil) {
		if !isTerm(t.Subject) {
			continue
		}
		if t.Object == parent {
			add(t.Subject)
			continue
		}
		if t.Object.IsBlank() {
			// Restriction-mediated edge: the blank node must point at
			// parent through some property (e.g. owl:someValuesFrom).
			if len(g.Triples(&t.Object, nil, &parent)) > 0 {
				add(t.Subject)
			}
		}
	}
	return out
}
