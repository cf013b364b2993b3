package scraping

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

var backgroundFeatureMarkers = map[vocab.Language]string{
	vocab.French:  "Capacité",
	vocab.English: "Feature",
}

func (s *scraper) ScrapeBackground(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Background, error) {
	slog.Info("Scraping background", "lang", ref.Language, "slug", ref.Slug)

	page, err := s.fetch(ctx, aidedd.ResourceBackground, ref)
	if err != nil {
		return nil, failed(err, "background", ref, ref.Language)
	}

	background, err := s.parseBackground(page, ref)
	if err != nil {
		return nil, failed(err, "background", ref, ref.Language)
	}
	return background, nil
}

func (s *scraper) parseBackground(page *dom.Page, ref dnd5e.Reference) (*dnd5e.Background, error) {
	content, err := page.FindRequired(nil, selContent)
	if err != nil {
		return nil, err
	}

	title, err := page.RequiredText(content, selTitle)
	if err != nil {
		return nil, err
	}

	marker := backgroundFeatureMarkers[ref.Language]
	isFeature := func(h dom.Heading) bool { return hasPrefixFold(h.Text, marker) }

	// The feature block also ends at any same-or-higher heading so that a
	// page with a single feature does not swallow its trailing sections.
	walker := dom.SectionWalker{
		Match: isFeature,
		Stop: func(h, target dom.Heading) bool {
			return isFeature(h) || dom.StopAtSameOrHigher(h, target)
		},
	}
	section, err := findSection(page, content, walker, "heading "+marker)
	if err != nil {
		return nil, err
	}

	paragraphs, err := section.Paragraphs(s.blocks, nil)
	if err != nil {
		return nil, err
	}

	return &dnd5e.Background{
		Reference:  ref,
		Language:   ref.Language,
		Title:      title,
		Subtitle:   backgroundSubtitle(section.Heading.Text, marker),
		Paragraphs: paragraphs,
	}, nil
}

// backgroundSubtitle turns "Feature: Shelter of the Faithful" into
// "Shelter of the Faithful"
func backgroundSubtitle(heading, marker string) string {
	subtitle := strings.TrimSpace(heading[min(len(marker), len(heading)):])
	subtitle = strings.TrimSpace(strings.TrimLeft(subtitle, ":"))
	if subtitle == "" {
		return heading
	}
	return subtitle
}
