package interfaces

import "io"

// Document is a parsed HTML tree reduced to the two operations the text
// transformer needs. Implementations visit only text nodes that are rendered
// to the user: attribute values are never passed to the visitor, and the
// contents of script, style, template and noscript elements are skipped.
type Document interface {
	// RewriteText calls fn for every rendered text node and stores its result
	// back into the node. fn receives and returns unescaped text.
	RewriteText(fn func(text string) string)

	// Render serializes the tree back to HTML.
	Render() (string, error)
}

// DocumentParser builds a Document from raw HTML
type DocumentParser interface {
	Parse(r io.Reader) (Document, error)
}
