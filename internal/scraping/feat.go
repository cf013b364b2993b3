package scraping

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const selPrerequisite = "div.prerequis"

var prerequisiteLabels = map[vocab.Language]string{
	vocab.French:  "Prérequis :",
	vocab.English: "Prerequisite:",
}

// featPage is what feat and invocation pages have in common
type featPage struct {
	title        string
	prerequisite string
	paragraphs   []string
}

func (s *scraper) ScrapeFeat(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Feat, error) {
	slog.Info("Scraping feat", "lang", ref.Language, "slug", ref.Slug)

	fp, err := s.scrapeFeatPage(ctx, aidedd.ResourceFeat, ref)
	if err != nil {
		return nil, failed(err, "feat", ref, ref.Language)
	}

	return &dnd5e.Feat{
		Reference:    ref,
		Language:     ref.Language,
		Title:        fp.title,
		Prerequisite: fp.prerequisite,
		Paragraphs:   fp.paragraphs,
	}, nil
}

func (s *scraper) ScrapeEldritchInvocation(ctx context.Context, ref dnd5e.Reference) (*dnd5e.EldritchInvocation, error) {
	slog.Info("Scraping eldritch invocation", "lang", ref.Language, "slug", ref.Slug)

	fp, err := s.scrapeFeatPage(ctx, aidedd.ResourceEldritchInvocation, ref)
	if err != nil {
		return nil, failed(err, "eldritch invocation", ref, ref.Language)
	}

	return &dnd5e.EldritchInvocation{
		Reference:    ref,
		Language:     ref.Language,
		Title:        fp.title,
		Prerequisite: fp.prerequisite,
		Paragraphs:   fp.paragraphs,
	}, nil
}

func (s *scraper) scrapeFeatPage(ctx context.Context, resource aidedd.Resource, ref dnd5e.Reference) (*featPage, error) {
	page, err := s.fetch(ctx, resource, ref)
	if err != nil {
		return nil, err
	}

	content, err := page.FindRequired(nil, selContent)
	if err != nil {
		return nil, err
	}

	fp := &featPage{}
	if fp.title, err = page.RequiredText(content, selTitle); err != nil {
		return nil, err
	}

	if prerequisite := page.FindOptional(content, selPrerequisite); prerequisite != nil {
		fp.prerequisite = stripLabels(dom.CleanText(prerequisite.Text()), prerequisiteLabels)
	}

	description, err := page.FindRequired(content, selDescription)
	if err != nil {
		return nil, err
	}
	if fp.paragraphs, err = s.inline.Sanitize(description); err != nil {
		return nil, err
	}
	return fp, nil
}
