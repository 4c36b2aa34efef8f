// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/onto-extract/internal/rdf"
)

// labeledGraph builds the two-child scenario: root with children A and
// B, each labeled, A with a definition.
func labeledGraph() (*rdf.Graph, rdf.Term, rdf.Term, rdf.Term) {
	g := rdf.NewGraph()
	root := goTerm("0008150")
	a, b := goTerm("0000001"), goTerm("0000002")
	addSubClass(g, a, root)
	addSubClass(g, b, root)

	g.Add(rdf.Triple{Subject: root, Predicate: rdfsLabel, Object: rdf.Literal("biological_process")})
	g.Add(rdf.Triple{Subject: a, Predicate: rdfsLabel, Object: rdf.Literal("mitochondrion inheritance")})
	g.Add(rdf.Triple{Subject: a, Predicate: definition, Object: rdf.Literal("The distribution of\nmitochondria.\tIncludes tabs.")})
	return g, root, a, b
}

func TestExtractDetailsTwoChildScenario(t *testing.T) {
	g, root, _, _ := labeledGraph()
	terms := Descendants(g, root, 2, nil)

	details := ExtractDetails(g, terms, root, 2, nil)
	if len(details) != 3 {
		t.Fatalf("len(details) = %d, want 3", len(details))
	}

	// Sorted by identifier: GO:0000001, GO:0000002, GO:0008150.
	if details[0].ID != "GO:0000001" || details[1].ID != "GO:0000002" || details[2].ID != "GO:0008150" {
		t.Fatalf("unexpected order: %v %v %v", details[0].ID, details[1].ID, details[2].ID)
	}

	// Direct children of root report themselves; the root reports none.
	if details[0].RootChildID != "GO:0000001" {
		t.Errorf("A root child = %q, want GO:0000001", details[0].RootChildID)
	}
	if details[1].RootChildID != "GO:0000002" {
		t.Errorf("B root child = %q, want GO:0000002", details[1].RootChildID)
	}
	if details[2].RootChildID != "" {
		t.Errorf("root's root child = %q, want empty", details[2].RootChildID)
	}

	if details[0].Label != "mitochondrion inheritance" {
		t.Errorf("A label = %q", details[0].Label)
	}
	if details[1].Label != "No label" {
		t.Errorf("unlabeled term label = %q, want placeholder", details[1].Label)
	}
	if details[1].Definition != "" {
		t.Errorf("B definition = %q, want empty", details[1].Definition)
	}
	if details[0].URI != TermPrefix+"0000001" {
		t.Errorf("A URI = %q", details[0].URI)
	}
}

func TestWriteTable(t *testing.T) {
	g, root, _, _ := labeledGraph()
	terms := Descendants(g, root, 2, nil)
	details := ExtractDetails(g, terms, root, 2, nil)

	var buf bytes.Buffer
	if err := WriteTable(&buf, details); err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want header + 3 rows", len(lines))
	}
	if lines[0] != "GO_ID\tGO_BP_ID\tLabel\tDefinition\tURI" {
		t.Errorf("header = %q", lines[0])
	}

	// Rows stay sorted and newlines/tabs in definitions are collapsed.
	if !strings.HasPrefix(lines[1], "GO:0000001\t") {
		t.Errorf("first row = %q", lines[1])
	}
	fields := strings.Split(lines[1], "\t")
	if len(fields) != 5 {
		t.Fatalf("field count = %d, want 5 (definition broke the layout?)", len(fields))
	}
	if fields[3] != "The distribution of mitochondria. Includes tabs." {
		t.Errorf("sanitized definition = %q", fields[3])
	}
}

func TestExtractDetailsProgressOutput(t *testing.T) {
	g, root, _, _ := labeledGraph()
	terms := Descendants(g, root, 2, nil)

	var progress bytes.Buffer
	details := ExtractDetails(g, terms, root, 2, &progress)

	// The counter is cosmetic; it must not affect results.
	if len(details) != 3 {
		t.Fatalf("len(details) = %d, want 3", len(details))
	}
}
