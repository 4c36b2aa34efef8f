// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"encoding/csv"
	"io"

	"github.com/pdiddy/onto-extract/internal/rdf"
)

// RootNamespace is the URI namespace of pathway classes.
const RootNamespace = "https://reactome.org/pathway/"

var (
	rdfType      = rdf.IRI(rdf.NSRDF + "type")
	owlClass     = rdf.IRI(rdf.NSOWL + "Class")
	owlAnnotProp = rdf.IRI(rdf.NSOWL + "AnnotationProperty")
	rdfsLabel    = rdf.IRI(rdf.NSRDFS + "label")
	subClassOf   = rdf.IRI(rdf.NSRDFS + "subClassOf")
	idProperty   = rdf.IRI(RootNamespace + "id")
)

// Convert builds an OWL class hierarchy from the events forest. Each
// kept node becomes an owl:Class with a reactome:id annotation, an
// rdfs:label from its name, and an rdfs:subClassOf edge to its nearest
// kept ancestor. Nodes of other types, or without a name, are skipped
// but their children stay attached to the skipped node's parent, so
// filtering never breaks the hierarchy chain.
func Convert(forest []Pathway) *rdf.Graph {
	g := rdf.NewGraph()
	g.Bind("owl", rdf.NSOWL)
	g.Bind("rdf", rdf.NSRDF)
	g.Bind("rdfs", rdf.NSRDFS)
	g.Bind("reactome", RootNamespace)

	g.Add(rdf.Triple{Subject: idProperty, Predicate: rdfType, Object: owlAnnotProp})

	for _, p := range forest {
		addPathway(g, p, "")
	}
	return g
}

func addPathway(g *rdf.Graph, p Pathway, parentID string) {
	if !p.isPathway() || p.Name == "" {
		for _, child := range p.Children {
			addPathway(g, child, parentID)
		}
		return
	}

	id := p.Identifier()
	uri := rdf.IRI(RootNamespace + id)

	g.Add(rdf.Triple{Subject: uri, Predicate: rdfType, Object: owlClass})
	g.Add(rdf.Triple{Subject: uri, Predicate: idProperty, Object: rdf.Literal(id)})
	g.Add(rdf.Triple{Subject: uri, Predicate: rdfsLabel, Object: rdf.Literal(p.Name)})

	if parentID != "" {
		g.Add(rdf.Triple{Subject: uri, Predicate: subClassOf, Object: rdf.IRI(RootNamespace + parentID)})
	}

	for _, child := range p.Children {
		addPathway(g, child, id)
	}
}

// WriteCSV writes the flat hierarchy table with columns id, parent_id,
// name, where parent_id is the identifier of the row's top-level
// ancestor (empty for top-level pathways). The same skip-but-descend
// filtering as Convert applies.
func WriteCSV(w io.Writer, forest []Pathway) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "parent_id", "name"}); err != nil {
		return err
	}
	for _, p := range forest {
		if err := writeCSVRows(cw, p, ""); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVRows(cw *csv.Writer, p Pathway, topID string) error {
	childTop := topID
	if p.isPathway() && p.Name != "" {
		if err := cw.Write([]string{p.Identifier(), topID, p.Name}); err != nil {
			return err
		}
		if topID == "" {
			childTop = p.Identifier()
		}
	}
	for _, child := range p.Children {
		if err := writeCSVRows(cw, child, childTop); err != nil {
			return err
		}
	}
	return nil
}
