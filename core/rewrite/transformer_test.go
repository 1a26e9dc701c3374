package rewrite

import (
	"errors"
	"io"
	"strings"
	"testing"

	"fale-proxy-api/core/domain"
	"fale-proxy-api/core/interfaces"
	"fale-proxy-api/infrastructure/html/goquerydoc"
	"fale-proxy-api/infrastructure/html/xnetdoc"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTMLWithYale = `<!DOCTYPE html>
<html>
<head>
  <title>Yale University Test Page</title>
  <meta charset="utf-8">
</head>
<body>
  <header>
    <h1>Welcome to Yale University</h1>
    <nav>
      <ul>
        <li><a href="https://www.yale.edu/about">About Yale</a></li>
        <li><a href="https://www.yale.edu/admissions">Yale Admissions</a></li>
        <li><a href="https://yale.edu/about">Yale, Yale and Yale again</a></li>
      </ul>
    </nav>
  </header>
  <main>
    <p>Yale University is a private Ivy League research university in New Haven, Connecticut.</p>
    <p>Founded in 1701, Yale is the third-oldest institution of higher education in the United States.</p>
    <img src="https://www.yale.edu/sites/default/files/yale-logo.png" alt="Yale Logo">
  </main>
</body>
</html>`

func parsers() map[string]interfaces.DocumentParser {
	return map[string]interfaces.DocumentParser{
		"goquery": goquerydoc.NewParser(),
		"xnet":    xnetdoc.NewParser(),
	}
}

func newTransformer(t *testing.T, parser interfaces.DocumentParser) *Transformer {
	t.Helper()
	tr, err := NewTransformer(parser, domain.DefaultReplacement)
	require.NoError(t, err)
	return tr
}

func load(t *testing.T, content string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

func TestNewTransformer_Validation(t *testing.T) {
	_, err := NewTransformer(nil, domain.DefaultReplacement)
	assert.Error(t, err, "nil parser should be rejected")

	_, err = NewTransformer(goquerydoc.NewParser(), domain.Replacement{Target: "Fale"})
	assert.Error(t, err, "empty source should be rejected")

	tr, err := NewTransformer(goquerydoc.NewParser(), domain.Replacement{Source: "A", Target: "B"})
	require.NoError(t, err)
	assert.Equal(t, domain.Replacement{Source: "A", Target: "B"}, tr.Replacement())
}

func TestTransform_Scenario(t *testing.T) {
	for name, parser := range parsers() {
		t.Run(name, func(t *testing.T) {
			out, count, err := newTransformer(t, parser).Transform(sampleHTMLWithYale)
			require.NoError(t, err)

			doc := load(t, out)
			assert.Equal(t, "Fale University Test Page", doc.Find("title").Text())
			assert.Equal(t, "Welcome to Fale University", doc.Find("h1").Text())
			assert.Contains(t, doc.Find("p").First().Text(), "Fale University is a private")
			assert.Equal(t, "About Fale", doc.Find("a").First().Text())
			assert.Equal(t, "Fale, Fale and Fale again", doc.Find("a").Last().Text())

			href, ok := doc.Find("a").Last().Attr("href")
			assert.True(t, ok)
			assert.Equal(t, "https://yale.edu/about", href)

			alt, _ := doc.Find("img").Attr("alt")
			assert.Equal(t, "Yale Logo", alt)

			// title, h1, three anchors (1+1+3), two paragraphs
			assert.Equal(t, 9, count)
		})
	}
}

func TestTransform_NoSourceTokenInText(t *testing.T) {
	for name, parser := range parsers() {
		t.Run(name, func(t *testing.T) {
			out, _, err := newTransformer(t, parser).Transform(sampleHTMLWithYale)
			require.NoError(t, err)

			doc := load(t, out)
			doc.Find("script, style").Remove()
			assert.NotContains(t, doc.Text(), "Yale")
		})
	}
}

func TestTransform_HrefByteIdentical(t *testing.T) {
	hrefs := []string{
		"https://yale.edu/about",
		"https://www.yale.edu/Yale/Yale?q=Yale#Yale",
		"/relative/Yale%20path",
	}

	for name, parser := range parsers() {
		t.Run(name, func(t *testing.T) {
			for _, href := range hrefs {
				input := `<p><a href="` + href + `">Yale</a></p>`
				out, _, err := newTransformer(t, parser).Transform(input)
				require.NoError(t, err)

				got, ok := load(t, out).Find("a").Attr("href")
				assert.True(t, ok)
				assert.Equal(t, href, got)
				assert.Contains(t, out, `href="`+href+`"`)
			}
		})
	}
}

func TestTransform_LiteralCaseSensitive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		count int
	}{
		{name: "lowercase is not matched", input: "<p>yale YALE</p>", want: "yale YALE", count: 0},
		{name: "substring inside a larger word", input: "<p>Yalemen</p>", want: "Falemen", count: 1},
		{name: "regex metacharacters are literal", input: "<p>Yale.* $1</p>", want: "Fale.* $1", count: 1},
		{name: "adjacent occurrences", input: "<p>YaleYale</p>", want: "FaleFale", count: 2},
		{name: "token absent", input: "<p>Harvard</p>", want: "Harvard", count: 0},
	}

	for name, parser := range parsers() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				out, count, err := newTransformer(t, parser).Transform(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, load(t, out).Find("p").Text())
				assert.Equal(t, tt.count, count)
			})
		}
	}
}

func TestTransform_AbsentTokenRoundTrips(t *testing.T) {
	input := "<html><head><title>Harvard</title></head><body><p>Hello</p></body></html>"

	for name, parser := range parsers() {
		t.Run(name, func(t *testing.T) {
			out, count, err := newTransformer(t, parser).Transform(input)
			require.NoError(t, err)
			assert.Equal(t, input, out)
			assert.Zero(t, count)
		})
	}
}

func TestTransform_Idempotent(t *testing.T) {
	for name, parser := range parsers() {
		t.Run(name, func(t *testing.T) {
			tr := newTransformer(t, parser)

			once, _, err := tr.Transform(sampleHTMLWithYale)
			require.NoError(t, err)

			twice, count, err := tr.Transform(once)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
			assert.Zero(t, count)
		})
	}
}

func TestTransform_ParsersAgree(t *testing.T) {
	outputs := make(map[string]string)
	for name, parser := range parsers() {
		out, _, err := newTransformer(t, parser).Transform(sampleHTMLWithYale)
		require.NoError(t, err)
		outputs[name] = out
	}

	assert.Equal(t, outputs["goquery"], outputs["xnet"])
}

// failingParser returns a parse error for every input
type failingParser struct{}

func (failingParser) Parse(io.Reader) (interfaces.Document, error) {
	return nil, errors.New("parse failed")
}

// failingDocument renders with an error
type failingDocument struct{}

func (failingDocument) RewriteText(func(string) string) {}

func (failingDocument) Render() (string, error) {
	return "", errors.New("render failed")
}

type failingRenderParser struct{}

func (failingRenderParser) Parse(io.Reader) (interfaces.Document, error) {
	return failingDocument{}, nil
}

func TestTransform_PropagatesErrors(t *testing.T) {
	tr := newTransformer(t, failingParser{})
	_, _, err := tr.Transform("<p>Yale</p>")
	assert.EqualError(t, err, "parse failed")

	tr = newTransformer(t, failingRenderParser{})
	_, _, err = tr.Transform("<p>Yale</p>")
	assert.EqualError(t, err, "render failed")
}
