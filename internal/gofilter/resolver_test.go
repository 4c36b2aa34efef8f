// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"testing"

	"github.com/pdiddy/onto-extract/internal/rdf"
)

// goTerm builds a GO term IRI from a bare identifier suffix.
func goTerm(id string) rdf.Term {
	return rdf.IRI(TermPrefix + id)
}

// addSubClass links child rdfs:subClassOf parent.
func addSubClass(g *rdf.Graph, child, parent rdf.Term) {
	g.Add(rdf.Triple{Subject: child, Predicate: subClassOf, Object: parent})
}

// addRestrictionSubClass links child to parent through an anonymous
// restriction node, the way part-of edges appear in go-basic.owl.
func addRestrictionSubClass(g *rdf.Graph, child, parent rdf.Term, label string) {
	blank := rdf.Blank(label)
	g.Add(rdf.Triple{Subject: child, Predicate: subClassOf, Object: blank})
	g.Add(rdf.Triple{Subject: blank, Predicate: rdf.IRI(rdf.NSRDF + "type"), Object: rdf.IRI(rdf.NSOWL + "Restriction")})
	g.Add(rdf.Triple{Subject: blank, Predicate: rdf.IRI(rdf.NSOWL + "someValuesFrom"), Object: parent})
}

func TestCURIE(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{rdf.NSOBO + "GO_0008150", "GO:0008150"},
		{rdf.NSOBO + "IAO_0000115", "IAO:0000115"},
		{"http://example.org/other", "http://example.org/other"},
	}
	for _, tt := range tests {
		if got := CURIE(tt.uri); got != tt.want {
			t.Errorf("CURIE(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestDirectSubclassesPlainEdges(t *testing.T) {
	g := rdf.NewGraph()
	root := goTerm("0008150")
	a, b := goTerm("0000001"), goTerm("0000002")
	addSubClass(g, a, root)
	addSubClass(g, b, root)
	addSubClass(g, goTerm("0000003"), a)

	got := DirectSubclasses(g, root)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Errorf("DirectSubclasses = %v, want [%v %v]", got, a, b)
	}
}

func TestDirectSubclassesRestrictionMediated(t *testing.T) {
	g := rdf.NewGraph()
	root := goTerm("0008150")
	c := goTerm("0000004")
	addRestrictionSubClass(g, c, root, "r1")

	got := DirectSubclasses(g, root)
	if len(got) != 1 || got[0] != c {
		t.Errorf("DirectSubclasses = %v, want [%v]", got, c)
	}
}

func TestDirectSubclassesIgnoresForeignNamespaces(t *testing.T) {
	g := rdf.NewGraph()
	root := goTerm("0008150")
	addSubClass(g, rdf.IRI(rdf.NSOBO+"CHEBI_12345"), root)
	addSubClass(g, rdf.IRI("http://example.org/thing"), root)

	if got := DirectSubclasses(g, root); len(got) != 0 {
		t.Errorf("DirectSubclasses = %v, want empty", got)
	}
}

func TestDirectSubclassesUnrelatedRestriction(t *testing.T) {
	g := rdf.NewGraph()
	root := goTerm("0008150")
	// Restriction pointing somewhere else must not produce an edge.
	addRestrictionSubClass(g, goTerm("0000005"), goTerm("0000099"), "r1")

	if got := DirectSubclasses(g, root); len(got) != 0 {
		t.Errorf("DirectSubclasses = %v, want empty", got)
	}
}

func TestDirectSubclassesDedupesDualEdges(t *testing.T) {
	g := rdf.NewGraph()
	root := goTerm("0008150")
	a := goTerm("0000001")
	// Both a plain edge and a restriction edge to the same parent.
	addSubClass(g, a, root)
	addRestrictionSubClass(g, a, root, "r1")

	if got := DirectSubclasses(g, root); len(got) != 1 {
		t.Errorf("len = %d, want 1 (deduplicated)", len(got))
	}
}
