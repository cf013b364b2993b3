package dom

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// Sentinels carrying inline formatting through flattened text
const (
	EmphasisMark = "_"
	StrongMark   = "*"
	BulletMark   = "• "
)

// DefaultUnwrap is every inline tag the sanitizer knows how to flatten
var DefaultUnwrap = []atom.Atom{atom.A, atom.Em, atom.I, atom.Strong, atom.B, atom.Span, atom.Li}

// Sanitizer flattens a page region into text fragments. Tags in the unwrap
// set are replaced by their text: emphasis becomes _x_, bold becomes *x*,
// list items become "• x" and anything else is left bare. Tags outside the
// set stay boundaries between fragments.
type Sanitizer struct {
	unwrap map[atom.Atom]bool
}

// NewSanitizer creates a sanitizer unwrapping the given tags, or
// DefaultUnwrap when none are given
func NewSanitizer(tags ...atom.Atom) *Sanitizer {
	if len(tags) == 0 {
		tags = DefaultUnwrap
	}
	unwrap := make(map[atom.Atom]bool, len(tags))
	for _, tag := range tags {
		unwrap[tag] = true
	}
	return &Sanitizer{unwrap: unwrap}
}

// Sanitize returns the text fragments of sel in document order. The page
// itself is left untouched.
func (s *Sanitizer) Sanitize(sel *goquery.Selection) ([]string, error) {
	if sel == nil || sel.Length() == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	for _, n := range sel.Clone().Nodes {
		s.flatten(n)
		if err := html.Render(&buf, n); err != nil {
			return nil, errors.Wrap(err, "failed to render sanitized region")
		}
	}

	// Re-parsing merges the text nodes left side by side by unwrapping
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sanitized region")
	}

	return Fragments(doc.Selection), nil
}

// flatten rewrites the unwrap-set descendants of n, innermost first
func (s *Sanitizer) flatten(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			s.flatten(c)
			if s.unwrap[c.DataAtom] {
				s.replace(n, c)
			}
		}
		c = next
	}
}

func (s *Sanitizer) replace(parent, n *html.Node) {
	text := textContent(n)

	switch n.DataAtom {
	case atom.Li:
		// list items stay their own fragment
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			c = next
		}
		n.Data, n.DataAtom, n.Attr = "p", atom.P, nil
		n.AppendChild(&html.Node{Type: html.TextNode, Data: BulletMark + CleanText(text)})
		return
	case atom.Em, atom.I:
		text = wrap(text, EmphasisMark)
	case atom.Strong, atom.B:
		text = wrap(text, StrongMark)
	}

	parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
	parent.RemoveChild(n)
}

// wrap surrounds the trimmed text with mark, keeping outer whitespace
// outside the markers
func wrap(text, mark string) string {
	inner := strings.TrimSpace(text)
	if inner == "" {
		return text
	}
	start := strings.Index(text, inner)
	return text[:start] + mark + inner + mark + text[start+len(inner):]
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if n.DataAtom == atom.Br {
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// Fragments returns every non-blank text node under sel, whitespace
// collapsed, in document order
func Fragments(sel *goquery.Selection) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := CleanText(n.Data); text != "" {
				out = append(out, text)
			}
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

// StripSentinels removes the emphasis and bold markers from text
func StripSentinels(text string) string {
	text = strings.TrimPrefix(text, BulletMark)
	return strings.NewReplacer(EmphasisMark, "", StrongMark, "").Replace(text)
}
