// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gofilter

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pdiddy/onto-extract/internal/rdf"
)

// progressEvery controls how often the walker reports node counts.
const progressEvery = 1000

// Descendants computes the set of all terms reachable from root by
// repeated direct-subclass expansion, root included. Each direct child
// of root is handed to a fixed-size worker pool as an independent
// subtree; within a subtree the descent is sequential depth-first. A
// shared visited set behind one mutex guarantees each node is expanded
// at most once, which keeps the walk finite on DAG-shaped hierarchies
// where a term is reachable through several parents.
//
// workers <= 0 means runtime.NumCPU(). progress may be nil.
func Descendants(g *rdf.Graph, root rdf.Term, workers int, progress io.Writer) map[rdf.Term]struct{} {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	w := &walker{g: g, visited: map[rdf.Term]struct{}{root: {}}, progress: progress}

	children := DirectSubclasses(g, root)
	w.mu.Lock()
	for _, c := range children {
		w.visited[c] = struct{}{}
	}
	w.mu.Unlock()

	tasks := make(chan rdf.Term)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for node := range tasks {
				w.expand(node)
			}
		}()
	}
	for _, c := range children {
		tasks <- c
	}
	close(tasks)
	wg.Wait()

	return w.visited
}

type walker struct {
	g        *rdf.Graph
	mu       sync.Mutex
	visited  map[rdf.Term]struct{}
	expanded atomic.Int64
	progress io.Writer
}

// expand claims the unvisited children of node and descends into them.
func (w *walker) expand(node rdf.Term) {
	children := DirectSubclasses(w.g, node)

	if n := w.expanded.Add(1); w.progress != nil && n%progressEvery == 0 {
		fmt.Fprintf(w.progress, "expanded %d nodes...\n", n)
	}

	if len(children) == 0 {
		return
	}

	w.mu.Lock()
	fresh := children[:0]
	for _, c := range children {
		if _, ok := w.visited[c]; !ok {
			w.visited[c] = struct{}{}
			fresh = append(fresh, c)
		}
	}
	w.mu.Unlock()

	for _, c := range fresh {
		w.expand(c)
	}
}
