package proposal

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const defaultAccent = "#1F3864"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type pageData struct {
	Title  string
	Accent string
	Body   template.HTML
}

// RenderHTML serializes a document to a complete HTML page. The body is
// table-normalized and sanitized before it is wrapped in the page shell.
func RenderHTML(doc Document) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "body.html", doc); err != nil {
		return "", fmt.Errorf("failed to render proposal body: %w", err)
	}

	normalized, err := NormalizeTables(body.String())
	if err != nil {
		return "", err
	}

	accent := doc.Brand.Accent
	if !hexColor.MatchString(accent) {
		accent = defaultAccent
	}

	var page bytes.Buffer
	if err := templates.ExecuteTemplate(&page, "page.html", pageData{
		Title:  doc.Title,
		Accent: accent,
		Body:   template.HTML(Sanitize(normalized)),
	}); err != nil {
		return "", fmt.Errorf("failed to render proposal page: %w", err)
	}
	return page.String(), nil
}
