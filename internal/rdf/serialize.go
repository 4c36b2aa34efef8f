// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Serialize writes the graph as indented RDF/XML. Subjects appear in
// insertion order; a subject with an rdf:type triple is written as a
// typed node element (e.g. owl:Class). The graph's prefix bindings are
// declared on rdf:RDF; namespaces used by the data but not bound get
// generated ns1, ns2, ... prefixes.
func Serialize(g *Graph, w io.Writer) error {
	s := newSerializer(g)
	return s.write(w)
}

type serializer struct {
	g        *Graph
	prefixes map[string]string // namespace -> prefix
	order    []string          // namespaces in declaration order
	genSeq   int
	subjects []Term
	typeOf   map[Term]Term // subject -> first IRI rdf:type object
}

func newSerializer(g *Graph) *serializer {
	s := &serializer{
		g:        g,
		prefixes: make(map[string]string),
		typeOf:   make(map[Term]Term),
	}

	for _, b := range g.Bindings() {
		s.register(b.Namespace, b.Prefix)
	}
	// rdf is always needed for rdf:RDF, rdf:about, rdf:resource.
	s.register(NSRDF, "rdf")

	rdfType := IRI(NSRDF + "type")
	seen := make(map[Term]struct{})
	for _, t := range g.all {
		if _, ok := seen[t.Subject]; !ok {
			seen[t.Subject] = struct{}{}
			s.subjects = append(s.subjects, t.Subject)
		}
		s.qname(t.Predicate.Value)
		if t.Predicate == rdfType && t.Object.IsIRI() {
			if _, ok := s.typeOf[t.Subject]; !ok {
				s.typeOf[t.Subject] = t.Object
			}
			s.qname(t.Object.Value)
		}
	}
	return s
}

func (s *serializer) register(namespace, prefix string) {
	if namespace == "" {
		return
	}
	if _, ok := s.prefixes[namespace]; ok {
		return
	}
	s.prefixes[namespace] = prefix
	s.order = append(s.order, namespace)
}

// splitIRI separates an IRI into namespace and local part at the last
// '#' or '/'.
func splitIRI(iri string) (ns, local string) {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return iri[:i+1], iri[i+1:]
	}
	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		return iri[:i+1], iri[i+1:]
	}
	return "", iri
}

// qname maps an IRI to prefix:local, registering a generated prefix for
// unbound namespaces.
func (s *serializer) qname(iri string) string {
	ns, local := splitIRI(iri)
	if ns == "" {
		return local
	}
	prefix, ok := s.prefixes[ns]
	if !ok {
		s.genSeq++
		prefix = fmt.Sprintf("ns%d", s.genSeq)
		s.register(ns, prefix)
	}
	return prefix + ":" + local
}

func name(qname string) xml.Name { return xml.Name{Local: qname} }

func (s *serializer) write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: name("rdf:RDF")}
	for _, ns := range s.order {
		root.Attr = append(root.Attr, xml.Attr{
			Name:  name("xmlns:" + s.prefixes[ns]),
			Value: ns,
		})
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	rdfType := IRI(NSRDF + "type")
	for _, subject := range s.subjects {
		elem := "rdf:Description"
		nodeType, typed := s.typeOf[subject]
		if typed {
			elem = s.qname(nodeType.Value)
		}

		start := xml.StartElement{Name: name(elem)}
		if subject.IsBlank() {
			start.Attr = append(start.Attr, xml.Attr{Name: name("rdf:nodeID"), Value: subject.Value})
		} else {
			start.Attr = append(start.Attr, xml.Attr{Name: name("rdf:about"), Value: subject.Value})
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}

		typeEmitted := false
		for _, t := range s.g.bySubject[subject] {
			if typed && !typeEmitted && t.Predicate == rdfType && t.Object == nodeType {
				// Carried by the typed element name.
				typeEmitted = true
				continue
			}
			if err := s.writeProperty(enc, t); err != nil {
				return err
			}
		}

		if err := enc.EncodeToken(xml.EndElement{Name: name(elem)}); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(xml.EndElement{Name: name("rdf:RDF")}); err != nil {
		return err
	}
	return enc.Flush()
}

func (s *serializer) writeProperty(enc *xml.Encoder, t Triple) error {
	start := xml.StartElement{Name: name(s.qname(t.Predicate.Value))}

	switch t.Object.Kind {
	case KindIRI:
		start.Attr = append(start.Attr, xml.Attr{Name: name("rdf:resource"), Value: t.Object.Value})
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
	case KindBlank:
		start.Attr = append(start.Attr, xml.Attr{Name: name("rdf:nodeID"), Value: t.Object.Value})
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
	case KindLiteral:
		if t.Object.Lang != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: name("xml:lang"), Value: t.Object.Lang})
		}
		if t.Object.Datatype != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: name("rdf:datatype"), Value: t.Object.Datatype})
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(t.Object.Value)); err != nil {
			return err
		}
	}

	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}
