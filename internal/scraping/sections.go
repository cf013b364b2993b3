package scraping

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
)

const selHeadings = "h1, h2, h3, h4, h5, h6"

// findSection runs walker over every block of content that holds headings,
// in document order, and returns the first section found. what names the
// section in the ScrapingFailed error.
func findSection(page *dom.Page, content *goquery.Selection, walker dom.SectionWalker, what string) (*dom.Section, error) {
	var section *dom.Section
	walked := make(map[*html.Node]bool)

	content.Find(selHeadings).EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		parent := heading.Parent()
		if parent.Length() == 0 || walked[parent.Get(0)] {
			return true
		}
		walked[parent.Get(0)] = true

		if found, ok := walker.Walk(parent); ok {
			section = found
			return false
		}
		return true
	})

	if section == nil {
		return nil, errors.ScrapingFailed(page.Slug, what)
	}
	return section, nil
}
