package proposal

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownToHTML converts free-form notes to an HTML fragment.
// The output is not yet safe to print; see RenderNotes.
func MarkdownToHTML(md string) string {
	// parsers keep state, one per call
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer))
}

// RenderNotes turns markdown (possibly machine written, possibly carrying
// raw HTML) into a normalized, sanitized fragment
func RenderNotes(md string) (template.HTML, error) {
	fragment, err := NormalizeTables(MarkdownToHTML(md))
	if err != nil {
		return "", err
	}
	return template.HTML(Sanitize(fragment)), nil
}
