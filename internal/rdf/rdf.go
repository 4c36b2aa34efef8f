// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rdf implements an in-memory RDF triple store with pattern
// queries, a streaming RDF/XML parser, and a pretty RDF/XML serializer.
package rdf

// Well-known namespace URIs.
const (
	NSRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	NSOWL      = "http://www.w3.org/2002/07/owl#"
	NSOBO      = "http://purl.obolibrary.org/obo/"
	NSOboInOwl = "http://www.geneontology.org/formats/oboInOwl#"
)

// TermKind distinguishes the three kinds of RDF node.
type TermKind int

const (
	// KindIRI is a named resource.
	KindIRI TermKind = iota
	// KindLiteral is a string value, optionally with a language tag or datatype.
	KindLiteral
	// KindBlank is an anonymous node identified by a document-local label.
	KindBlank
)

// Term is one node of a triple. Terms are small comparable values; the
// zero Term is an empty IRI and is treated as "no term".
type Term struct {
	Kind     TermKind
	Value    string // IRI, literal lexical form, or blank node label
	Lang     string // language tag, literals only
	Datatype string // datatype IRI, literals only
}

// IRI returns a named-resource term.
func IRI(uri string) Term { return Term{Kind: KindIRI, Value: uri} }

// Literal returns a plain literal term.
func Literal(text string) Term { return Term{Kind: KindLiteral, Value: text} }

// LangLiteral returns a language-tagged literal term.
func LangLiteral(text, lang string) Term {
	return Term{Kind: KindLiteral, Value: text, Lang: lang}
}

// TypedLiteral returns a datatyped literal term.
func TypedLiteral(text, datatype string) Term {
	return Term{Kind: KindLiteral, Value: text, Datatype: datatype}
}

// Blank returns an anonymous node term with the given label.
func Blank(label string) Term { return Term{Kind: KindBlank, Value: label} }

// IsIRI reports whether the term is a named resource.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsBlank reports whether the term is an anonymous node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsZero reports whether the term is the zero value.
func (t Term) IsZero() bool { return t == Term{} }

// Triple is one (subject, predicate, object) statement. Triples are
// comparable values, so a map keyed by Triple acts as a triple set.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Binding associates a namespace prefix with its URI.
type Binding struct {
	Prefix    string
	Namespace string
}

// Graph is an in-memory triple set with subject, predicate, and object
// indexes.
// Writes are not synchronized; once loaded, a Graph is safe for
// concurrent readers because all read paths only consult maps and
// slices that are no longer mutated.
type Graph struct {
	set         map[Triple]struct{}
	all         []Triple
	bySubject   map[Term][]Triple
	byPredicate map[Term][]Triple
	byObject    map[Term][]Triple
	bindings    []Binding
	bound       map[string]string // prefix -> namespace
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		set:         make(map[Triple]struct{}),
		bySubject:   make(map[Term][]Triple),
		byPredicate: make(map[Term][]Triple),
		byObject:    make(map[Term][]Triple),
		bound:       make(map[string]string),
	}
}

// Add inserts a triple, ignoring duplicates. It reports whether the
// triple was new.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.set[t]; ok {
		return false
	}
	g.set[t] = struct{}{}
	g.all = append(g.all, t)
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], t)
	g.byPredicate[t.Predicate] = append(g.byPredicate[t.Predicate], t)
	g.byObject[t.Object] = append(g.byObject[t.Object], t)
	return true
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.all) }

// Has reports whether the exact triple is present.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.set[t]
	return ok
}

// Triples returns all triples matching the pattern; nil components are
// wildcards. The result preserves insertion order, so repeated queries
// over an unchanged graph return identical slices.
func (g *Graph) Triples(s, p, o *Term) []Triple {
	var candidates []Triple
	switch {
	case s != nil:
		candidates = g.bySubject[*s]
	case o != nil:
		candidates = g.byObject[*o]
	case p != nil:
		candidates = g.byPredicate[*p]
	default:
		candidates = g.all
	}

	var out []Triple
	for _, t := range candidates {
		if s != nil && t.Subject != *s {
			continue
		}
		if p != nil && t.Predicate != *p {
			continue
		}
		if o != nil && t.Object != *o {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Bind associates a prefix with a namespace. Rebinding an existing
// prefix replaces its namespace.
func (g *Graph) Bind(prefix, namespace string) {
	if ns, ok := g.bound[prefix]; ok {
		if ns != namespace {
			for i := range g.bindings {
				if g.bindings[i].Prefix == prefix {
					g.bindings[i].Namespace = namespace
				}
			}
			g.bound[prefix] = namespace
		}
		return
	}
	g.bound[prefix] = namespace
	g.bindings = append(g.bindings, Binding{Prefix: prefix, Namespace: namespace})
}

// Bindings returns the prefix bindings in the order they were added.
func (g *Graph) Bindings() []Binding {
	out := make([]Binding, len(g.bindings))
	copy(out, g.bindings)
	return out
}

// Namespace returns the URI bound to prefix, or "".
func (g *Graph) Namespace(prefix string) string { return g.bound[prefix] }
