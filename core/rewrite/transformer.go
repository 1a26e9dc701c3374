// ABOUTME: Text transformer that rewrites a token inside rendered HTML text
// ABOUTME: Attribute values such as href and src are never touched

package rewrite

import (
	"errors"
	"strings"

	"fale-proxy-api/core/domain"
	"fale-proxy-api/core/interfaces"
)

// Transformer replaces every occurrence of a source token with a target token
// in the text nodes of an HTML document
type Transformer struct {
	parser      interfaces.DocumentParser
	replacement domain.Replacement
}

// NewTransformer creates a transformer backed by the given parser
func NewTransformer(parser interfaces.DocumentParser, replacement domain.Replacement) (*Transformer, error) {
	if parser == nil {
		return nil, errors.New("document parser cannot be nil")
	}
	if err := replacement.Validate(); err != nil {
		return nil, err
	}

	return &Transformer{
		parser:      parser,
		replacement: replacement,
	}, nil
}

// Transform parses html, rewrites its text nodes and serializes the result.
// It returns the number of replacements made.
func (t *Transformer) Transform(html string) (string, int, error) {
	doc, err := t.parser.Parse(strings.NewReader(html))
	if err != nil {
		return "", 0, err
	}

	count := 0
	doc.RewriteText(func(text string) string {
		n := strings.Count(text, t.replacement.Source)
		if n == 0 {
			return text
		}
		count += n
		return strings.ReplaceAll(text, t.replacement.Source, t.replacement.Target)
	})

	out, err := doc.Render()
	if err != nil {
		return "", 0, err
	}

	return out, count, nil
}

// Replacement returns the substitution this transformer applies
func (t *Transformer) Replacement() domain.Replacement {
	return t.replacement
}
