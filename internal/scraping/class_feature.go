package scraping

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
)

func (s *scraper) ScrapeClassFeature(ctx context.Context, ref dnd5e.ClassFeatureReference) (*dnd5e.ClassFeature, error) {
	slog.Info("Scraping class feature", "lang", ref.Language, "class", ref.Class, "title", ref.Title)

	page, err := s.fetch(ctx, aidedd.ResourceClass, ref.Page())
	if err != nil {
		return nil, failed(err, "class feature", ref, ref.Language)
	}

	feature, err := s.parseClassFeature(page, ref)
	if err != nil {
		return nil, failed(err, "class feature", ref, ref.Language)
	}
	return feature, nil
}

func (s *scraper) parseClassFeature(page *dom.Page, ref dnd5e.ClassFeatureReference) (*dnd5e.ClassFeature, error) {
	content, err := page.FindRequired(nil, selContent)
	if err != nil {
		return nil, err
	}

	walker := dom.SectionWalker{
		Match: func(h dom.Heading) bool { return h.Text == ref.Title },
	}
	section, err := findSection(page, content, walker, "heading "+ref.Title)
	if err != nil {
		return nil, err
	}

	paragraphs, err := section.Paragraphs(s.blocks, nil)
	if err != nil {
		return nil, err
	}

	feature := &dnd5e.ClassFeature{
		Reference:  ref,
		Language:   ref.Language,
		Class:      ref.Class,
		Title:      ref.Title,
		Paragraphs: paragraphs,
	}
	feature.ClassVariant, _ = section.VariantOf(func(text string) bool {
		return ref.Class.StartsWithSubclassMarker(text, ref.Language)
	})
	return feature, nil
}
