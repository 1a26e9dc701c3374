package xnetdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Yale University</title>
  <style>.yale { color: blue; } /* Yale */</style>
  <script>var school = "Yale";</script>
</head>
<body>
  <h1 class="Yale">Yale &amp; friends</h1>
  <a href="https://yale.edu/about" title="Yale">About Yale</a>
  <img src="https://yale.edu/logo.png" alt="Yale logo">
  <!-- Yale comment -->
  <noscript>Enable JavaScript for Yale</noscript>
  <template><p>Yale template</p></template>
</body>
</html>`

func rewriteAll(t *testing.T, input string) (string, []string) {
	t.Helper()

	doc, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	var visited []string
	doc.RewriteText(func(text string) string {
		visited = append(visited, text)
		return strings.ReplaceAll(text, "Yale", "Fale")
	})

	out, err := doc.Render()
	require.NoError(t, err)
	return out, visited
}

func TestDocument_RewritesRenderedText(t *testing.T) {
	out, _ := rewriteAll(t, samplePage)

	assert.Contains(t, out, "<title>Fale University</title>")
	assert.Contains(t, out, "Fale &amp; friends</h1>")
	assert.Contains(t, out, ">About Fale</a>")
}

func TestDocument_LeavesAttributesUntouched(t *testing.T) {
	out, _ := rewriteAll(t, samplePage)

	assert.Contains(t, out, `href="https://yale.edu/about"`)
	assert.Contains(t, out, `src="https://yale.edu/logo.png"`)
	assert.Contains(t, out, `title="Yale"`)
	assert.Contains(t, out, `alt="Yale logo"`)
	assert.Contains(t, out, `class="Yale"`)
}

func TestDocument_SkipsNonRenderedText(t *testing.T) {
	out, visited := rewriteAll(t, samplePage)

	assert.Contains(t, out, `var school = "Yale";`)
	assert.Contains(t, out, "/* Yale */")
	assert.Contains(t, out, "<!-- Yale comment -->")
	assert.Contains(t, out, "Enable JavaScript for Yale")
	assert.Contains(t, out, "Yale template")

	for _, text := range visited {
		assert.NotContains(t, text, "school", "script text must not be visited")
		assert.NotContains(t, text, "color", "style text must not be visited")
		assert.NotContains(t, text, "comment", "comments are not text nodes")
	}
}

func TestDocument_VisitsUnescapedText(t *testing.T) {
	_, visited := rewriteAll(t, "<p>AT&amp;T</p>")

	assert.Contains(t, visited, "AT&T")
}

func TestDocument_RenderWithoutChanges(t *testing.T) {
	doc, err := NewParser().Parse(strings.NewReader("<p>hello</p>"))
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "<html><head></head><body><p>hello</p></body></html>", out)
}
