package proposal

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// policy is the allow-list every printed fragment goes through.
// Sanitize is safe for concurrent use once the policy is built.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"h1", "h2", "h3", "h4", "p", "br", "hr", "div", "span", "section", "header",
		"strong", "em", "b", "i", "u", "blockquote", "code", "pre",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "ul", "ol", "li",
	)
	p.AllowTables()
	p.AllowLists()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()

	// inline images only: a remote src would make the printer fetch it
	p.AllowAttrs("alt").Matching(bluemonday.Paragraph).OnElements("img")
	p.AllowAttrs("src").OnElements("img")
	p.AllowDataURIImages()
	return p
}

// Sanitize strips everything outside the structural allow-list
func Sanitize(fragment string) string {
	return policy.Sanitize(fragment)
}

// NormalizeTables rewrites every table in an HTML fragment so that it has a
// header: when a table has no header row its first row is promoted, header
// cells in the body become data cells and data cells in the header become
// header cells.
func NormalizeTables(fragment string) (string, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent)
	if err != nil {
		return "", fmt.Errorf("failed to parse html fragment: %w", err)
	}

	var b strings.Builder
	for _, n := range nodes {
		walk(n, func(el *html.Node) {
			if el.DataAtom == atom.Table {
				normalizeTable(el)
			}
		})
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("failed to render html fragment: %w", err)
		}
	}
	return b.String(), nil
}

func normalizeTable(table *html.Node) {
	var thead *html.Node
	var bodies []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		switch c.DataAtom {
		case atom.Thead:
			if thead == nil {
				thead = c
			} else {
				bodies = append(bodies, c)
			}
		case atom.Tbody, atom.Tfoot:
			bodies = append(bodies, c)
		}
	}

	if thead == nil || firstRow(thead) == nil {
		promoted := firstBodyRow(bodies)
		if promoted == nil {
			return
		}
		if thead == nil {
			thead = &html.Node{Type: html.ElementNode, Data: "thead", DataAtom: atom.Thead}
			table.InsertBefore(thead, firstSection(table))
		}
		promoted.Parent.RemoveChild(promoted)
		thead.AppendChild(promoted)
	}

	for r := thead.FirstChild; r != nil; r = r.NextSibling {
		retagCells(r, atom.Td, atom.Th)
	}
	for _, body := range bodies {
		if body.DataAtom == atom.Thead {
			body.DataAtom, body.Data = atom.Tbody, "tbody"
		}
		for r := body.FirstChild; r != nil; r = r.NextSibling {
			retagCells(r, atom.Th, atom.Td)
		}
	}
}

// firstSection returns the first thead/tbody/tfoot/tr child of a table, or nil
func firstSection(table *html.Node) *html.Node {
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		switch c.DataAtom {
		case atom.Thead, atom.Tbody, atom.Tfoot, atom.Tr:
			return c
		}
	}
	return nil
}

func firstRow(section *html.Node) *html.Node {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Tr {
			return c
		}
	}
	return nil
}

func firstBodyRow(bodies []*html.Node) *html.Node {
	for _, body := range bodies {
		if body.DataAtom == atom.Tfoot {
			continue
		}
		if r := firstRow(body); r != nil {
			return r
		}
	}
	return nil
}

func retagCells(row *html.Node, from, to atom.Atom) {
	if row.DataAtom != atom.Tr {
		return
	}
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == from {
			c.DataAtom, c.Data = to, to.String()
		}
	}
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
