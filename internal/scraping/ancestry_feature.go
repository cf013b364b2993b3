package scraping

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const calloutClass = "encadre"

var subAncestryMarkers = map[vocab.Language]string{
	vocab.French:  "Sous-race.",
	vocab.English: "Subrace.",
}

func (s *scraper) ScrapeAncestryFeature(ctx context.Context, ref dnd5e.AncestryFeatureReference) (*dnd5e.AncestryFeature, error) {
	slog.Info("Scraping ancestry feature", "lang", ref.Language, "ancestry", ref.Ancestry, "sub_ancestry", ref.SubAncestry)

	page, err := s.fetch(ctx, aidedd.ResourceAncestry, ref.Page())
	if err != nil {
		return nil, failed(err, "ancestry feature", ref, ref.Language)
	}

	feature, err := s.parseAncestryFeature(page, ref)
	if err != nil {
		return nil, failed(err, "ancestry feature", ref, ref.Language)
	}
	return feature, nil
}

func (s *scraper) parseAncestryFeature(page *dom.Page, ref dnd5e.AncestryFeatureReference) (*dnd5e.AncestryFeature, error) {
	content, err := page.FindRequired(nil, selContent)
	if err != nil {
		return nil, err
	}

	title := ref.SubAncestry
	if title == "" {
		if title, err = page.RequiredText(content, selTitle); err != nil {
			return nil, err
		}
	}

	walker := dom.SectionWalker{
		Match: func(h dom.Heading) bool { return isAncestryHeading(h.Text, ref) },
	}
	section, err := findSection(page, content, walker, "traits heading")
	if err != nil {
		return nil, err
	}

	marker := subAncestryMarkers[ref.Language]
	paragraphs, err := section.Paragraphs(s.blocks, func(n *goquery.Selection) bool {
		if n.HasClass(calloutClass) {
			return false
		}
		return !hasPrefixFold(dom.CleanText(n.Text()), marker)
	})
	if err != nil {
		return nil, err
	}

	return &dnd5e.AncestryFeature{
		Reference:   ref,
		Language:    ref.Language,
		Ancestry:    ref.Ancestry,
		SubAncestry: ref.SubAncestry,
		Title:       title,
		Paragraphs:  paragraphs,
	}, nil
}

// isAncestryHeading matches the heading of the requested sub-ancestry, or
// the traits heading of the ancestry itself
func isAncestryHeading(text string, ref dnd5e.AncestryFeatureReference) bool {
	text = strings.ToLower(text)
	if ref.SubAncestry != "" {
		return strings.HasSuffix(text, strings.ToLower(ref.SubAncestry))
	}
	if ref.Language == vocab.French {
		return strings.HasPrefix(text, "traits") || strings.HasSuffix(text, "traits raciaux")
	}
	return strings.HasSuffix(text, "traits")
}
