// ABOUTME: golang.org/x/net/html implementation of the Document abstraction
// ABOUTME: Recursively walks the node tree without any selector engine

package xnetdoc

import (
	"bytes"
	"io"

	"fale-proxy-api/core/interfaces"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser builds x/net/html node trees
type Parser struct{}

// NewParser creates an x/net/html document parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HTML from r
func (p *Parser) Parse(r io.Reader) (interfaces.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Document wraps the root node of a parsed tree
type Document struct {
	root *html.Node
}

// RewriteText applies fn to every rendered text node
func (d *Document) RewriteText(fn func(text string) string) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			n.Data = fn(n.Data)
			return
		}
		if n.Type == html.ElementNode && hidden(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
}

// Render serializes the tree
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func hidden(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Noscript:
		return true
	}
	return false
}
