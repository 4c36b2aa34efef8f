// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import "github.com/pdiddy/onto-extract/internal/rdf"

// NearestRootChild finds the ancestor of term that is a direct child of
// root, searching breadth-first upward over named-term subClassOf edges
// (restriction nodes are ignored on the way up). The answer is the node
// being expanded when a root edge is first discovered, so a term that is
// itself a direct child of root reports itself, regardless of any longer
// parent path. Under multiple paths the first discovery wins; parents
// are scanned in the graph's insertion order, so the result is stable
// for a given file. The root itself has no answer.
func NearestRootChild(g *rdf.Graph, term, root rdf.Term) (rdf.Term, bool) {
	if term == root {
		return rdf.Term{}, false
	}

	visited := make(map[rdf.Term]struct{})
	queue := []rdf.Term{term}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		for _, t := range g.Triples(&current, &subClassOf, nil) {
			if !isTerm(t.Object) {
				continue
			}
			if t.Object == root {
				return current, true
			}
			queue = append(queue, t.Object)
		}
	}
	return rdf.Term{}, false
}
