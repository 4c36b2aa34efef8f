// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// nsXML is the namespace the decoder resolves the predeclared "xml"
// prefix to (xml:lang attributes).
const nsXML = "http://www.w3.org/XML/1998/namespace"

// Parse reads an RDF/XML document into a new Graph. Namespace
// declarations on the rdf:RDF element become prefix bindings. Anonymous
// nodes (owl:Restriction and friends) receive document-local blank
// labels; rdf:nodeID labels are kept as written.
func Parse(r io.Reader) (*Graph, error) {
	p := &parser{
		dec: xml.NewDecoder(r),
		g:   NewGraph(),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.g, nil
}

type parser struct {
	dec      *xml.Decoder
	g        *Graph
	blankSeq int
}

func (p *parser) freshBlank() Term {
	p.blankSeq++
	return Blank(fmt.Sprintf("b%d", p.blankSeq))
}

func (p *parser) run() error {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading RDF/XML: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if se.Name.Space == NSRDF && se.Name.Local == "RDF" {
			p.captureBindings(se)
			continue
		}

		// Any other top-level start element is a node element.
		if _, err := p.parseNode(se); err != nil {
			return err
		}
	}
}

// captureBindings records the xmlns declarations on the rdf:RDF element.
func (p *parser) captureBindings(se xml.StartElement) {
	for _, a := range se.Attr {
		if a.Name.Space == "xmlns" {
			p.g.Bind(a.Name.Local, a.Value)
		}
	}
}

func attr(se xml.StartElement, ns, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Space == ns && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// parseNode consumes a node element and returns its subject term.
func (p *parser) parseNode(se xml.StartElement) (Term, error) {
	var subject Term
	switch {
	case hasAttr(se, NSRDF, "about"):
		v, _ := attr(se, NSRDF, "about")
		subject = IRI(v)
	case hasAttr(se, NSRDF, "nodeID"):
		v, _ := attr(se, NSRDF, "nodeID")
		subject = Blank(v)
	default:
		subject = p.freshBlank()
	}

	// A typed node element implies an rdf:type triple.
	if !(se.Name.Space == NSRDF && se.Name.Local == "Description") {
		p.g.Add(Triple{subject, IRI(NSRDF + "type"), IRI(se.Name.Space + se.Name.Local)})
	}

	for {
		tok, err := p.dec.Token()
		if err != nil {
			return subject, fmt.Errorf("inside node element %s: %w", se.Name.Local, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if err := p.parseProperty(subject, el); err != nil {
				return subject, err
			}
		case xml.EndElement:
			return subject, nil
		}
	}
}

func hasAttr(se xml.StartElement, ns, local string) bool {
	_, ok := attr(se, ns, local)
	return ok
}

// parseProperty consumes one property element of subject.
func (p *parser) parseProperty(subject Term, se xml.StartElement) error {
	predicate := IRI(se.Name.Space + se.Name.Local)

	if v, ok := attr(se, NSRDF, "resource"); ok {
		p.g.Add(Triple{subject, predicate, IRI(v)})
		return p.dec.Skip()
	}
	if v, ok := attr(se, NSRDF, "nodeID"); ok {
		p.g.Add(Triple{subject, predicate, Blank(v)})
		return p.dec.Skip()
	}
	if v, ok := attr(se, NSRDF, "parseType"); ok && v == "Resource" {
		// Shorthand for a blank node carrying the nested properties.
		inner := p.freshBlank()
		p.g.Add(Triple{subject, predicate, inner})
		for {
			tok, err := p.dec.Token()
			if err != nil {
				return fmt.Errorf("inside parseType=Resource: %w", err)
			}
			switch el := tok.(type) {
			case xml.StartElement:
				if err := p.parseProperty(inner, el); err != nil {
					return err
				}
			case xml.EndElement:
				return nil
			}
		}
	}

	lang, _ := attr(se, nsXML, "lang")
	datatype, _ := attr(se, NSRDF, "datatype")

	// The content is either character data (a literal) or a nested
	// node element (the object resource).
	var text strings.Builder
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return fmt.Errorf("inside property element %s: %w", se.Name.Local, err)
		}
		switch el := tok.(type) {
		case xml.CharData:
			text.Write(el)
		case xml.StartElement:
			object, err := p.parseNode(el)
			if err != nil {
				return err
			}
			p.g.Add(Triple{subject, predicate, object})
			return p.dec.Skip()
		case xml.EndElement:
			obj := Term{Kind: KindLiteral, Value: text.String(), Lang: lang, Datatype: datatype}
			p.g.Add(Triple{subject, predicate, obj})
			return nil
		}
	}
}
