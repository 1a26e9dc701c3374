// ABOUTME: goquery-backed implementation of the Document abstraction
// ABOUTME: Walks element contents to reach text nodes and renders the whole tree

package goquerydoc

import (
	"io"

	"fale-proxy-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// skipSelector matches elements whose text is not rendered to the reader
const skipSelector = "script, style, template, noscript, template *, noscript *"

// Parser builds goquery documents
type Parser struct{}

// NewParser creates a goquery document parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HTML from r
func (p *Parser) Parse(r io.Reader) (interfaces.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Document wraps a goquery document
type Document struct {
	doc *goquery.Document
}

// RewriteText applies fn to every rendered text node
func (d *Document) RewriteText(fn func(text string) string) {
	d.doc.Find("*").Not(skipSelector).Contents().Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			if node.Type == html.TextNode {
				node.Data = fn(node.Data)
			}
		}
	})
}

// Render serializes the document, doctype included
func (d *Document) Render() (string, error) {
	return d.doc.Html()
}
