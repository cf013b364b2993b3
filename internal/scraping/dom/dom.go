// Package dom locates the regions of a rules page and flattens them into
// sentinel-marked text. Every required lookup goes through FindRequired so
// a layout change on the site surfaces as a single ScrapingFailed error
// naming the page and the selector.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// Page is a parsed rules page
type Page struct {
	// Slug names the page in errors
	Slug string
	Doc  *goquery.Document
}

// Parse parses the HTML of the page identified by slug
func Parse(slug, body string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse page %s", slug).WithMeta("slug", slug)
	}
	return &Page{Slug: slug, Doc: doc}, nil
}

// FindRequired returns the first match of selector under root, or a
// ScrapingFailed error carrying the page slug and the selector
func (p *Page) FindRequired(root *goquery.Selection, selector string) (*goquery.Selection, error) {
	if root == nil {
		root = p.Doc.Selection
	}
	found := root.Find(selector)
	if found.Length() == 0 {
		return nil, errors.ScrapingFailed(p.Slug, selector)
	}
	return found.First(), nil
}

// FindOptional returns the first match of selector under root, or nil
func (p *Page) FindOptional(root *goquery.Selection, selector string) *goquery.Selection {
	if root == nil {
		root = p.Doc.Selection
	}
	found := root.Find(selector)
	if found.Length() == 0 {
		return nil
	}
	return found.First()
}

// RequiredText is FindRequired followed by CleanText
func (p *Page) RequiredText(root *goquery.Selection, selector string) (string, error) {
	sel, err := p.FindRequired(root, selector)
	if err != nil {
		return "", err
	}
	return CleanText(sel.Text()), nil
}

// Property reads a labelled property field such as "Range: 150 feet",
// stripping every label given.
func (p *Page) Property(root *goquery.Selection, selector string, labels ...string) (string, error) {
	text, err := p.RequiredText(root, selector)
	if err != nil {
		return "", err
	}
	for _, label := range labels {
		text = strings.ReplaceAll(text, label, "")
	}
	return strings.TrimSpace(text), nil
}

// CleanText collapses runs of whitespace, non-breaking spaces included,
// into single spaces and trims the result.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// HeadingLevel returns 1 to 6 for h1 to h6 and 0 for any other node
func HeadingLevel(n *html.Node) int {
	if n == nil || n.Type != html.ElementNode {
		return 0
	}
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}
