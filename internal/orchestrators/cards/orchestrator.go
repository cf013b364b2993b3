// Package cards generates the cards of a list of references: it expands
// spell filters, resolves every kind through the batch resolver and renders
// the records in kind order.
package cards

//go:generate mockgen -destination=mock/mock_service.go -package=cardsmock github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/batch"
	"github.com/KirkDiggler/rpg-cards/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	"github.com/KirkDiggler/rpg-cards/internal/scraping"
)

// Service defines the interface for card generation
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the cards orchestrator
type Config struct {
	Scraper  scraping.Scraper
	Client   aidedd.Client
	Renderer *render.Renderer
	// IDGenerator names each run in logs (optional)
	IDGenerator idgen.Generator

	// Workers bounds concurrent scrapes per kind, batch.DefaultWorkers when 0
	Workers  int
	FailFast bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Scraper == nil {
		vb.RequiredField("Scraper")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Workers < 0 {
		vb.Fieldf("Workers", "must not be negative, got %d", c.Workers)
	}

	return vb.Build()
}

type orchestrator struct {
	scraper  scraping.Scraper
	client   aidedd.Client
	renderer *render.Renderer
	idGen    idgen.Generator
	workers  int
	failFast bool
}

// New creates a new cards orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid cards orchestrator config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("run")
	}

	return &orchestrator{
		scraper:  cfg.Scraper,
		client:   cfg.Client,
		renderer: cfg.Renderer,
		idGen:    idGen,
		workers:  cfg.Workers,
		failFast: cfg.FailFast,
	}, nil
}

// Generate resolves and renders every reference of the input
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.empty() {
		return nil, errors.InvalidArgument("nothing to generate, give at least one reference or a legend language")
	}

	run := &generation{
		orchestrator: o,
		options:      batch.Options{Workers: o.workers, FailFast: o.failFast || input.FailFast},
		output:       &GenerateOutput{RunID: o.idGen.Generate()},
	}
	start := time.Now()
	slog.Info("Generating cards", "run_id", run.output.RunID)

	spells, err := run.expandSpellFilters(ctx, input.Spells, input.SpellFilters)
	if err != nil {
		return nil, err
	}

	steps := []func(context.Context) error{
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "spell", spells, o.scraper.ScrapeSpell, batch.CompareSpells,
				o.renderer.Spell, func(s *dnd5e.Spell) string { return s.Reference.String() })
		},
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "magic item", input.MagicItems, o.scraper.ScrapeMagicItem, batch.CompareMagicItems,
				o.renderer.MagicItem, func(i *dnd5e.MagicItem) string { return i.Reference.String() })
		},
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "feat", input.Feats, o.scraper.ScrapeFeat, batch.CompareFeats,
				o.renderer.Feat, func(f *dnd5e.Feat) string { return f.Reference.String() })
		},
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "eldritch invocation", input.EldritchInvocations, o.scraper.ScrapeEldritchInvocation,
				batch.CompareEldritchInvocations, o.renderer.EldritchInvocation,
				func(i *dnd5e.EldritchInvocation) string { return i.Reference.String() })
		},
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "class feature", input.ClassFeatures, o.scraper.ScrapeClassFeature,
				batch.CompareClassFeatures, o.renderer.ClassFeature,
				func(f *dnd5e.ClassFeature) string { return f.Reference.String() })
		},
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "ancestry feature", input.AncestryFeatures, o.scraper.ScrapeAncestryFeature,
				batch.CompareAncestryFeatures, o.renderer.AncestryFeature,
				func(f *dnd5e.AncestryFeature) string { return f.Reference.String() })
		},
		func(ctx context.Context) error {
			return resolveKind(ctx, run, "background", input.Backgrounds, o.scraper.ScrapeBackground,
				batch.CompareBackgrounds, o.renderer.Background,
				func(b *dnd5e.Background) string { return b.Reference.String() })
		},
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return nil, err
		}
	}

	if input.LegendLanguage != "" {
		legend, err := o.renderer.Legend(input.LegendLanguage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to render legend")
		}
		run.output.Cards = append(run.output.Cards, legend)
	}

	slog.Info("Generated cards",
		"run_id", run.output.RunID,
		"cards", len(run.output.Cards),
		"failures", len(run.output.Failures),
		"duration", time.Since(start))

	return run.output, nil
}

// generation is the state of one Generate call
type generation struct {
	*orchestrator
	options batch.Options
	output  *GenerateOutput
}

// fail records a failed reference, or returns it when failing fast
func (r *generation) fail(ref string, err error) error {
	if r.options.FailFast {
		return err
	}
	slog.Warn("Reference failed", "run_id", r.output.RunID, "reference", ref, "error", err)
	r.output.Failures = append(r.output.Failures, batch.Failure{Reference: ref, Err: err})
	return nil
}

// expandSpellFilters appends the spells matching each filter
func (r *generation) expandSpellFilters(ctx context.Context, spells []dnd5e.Reference, filters []aidedd.SpellFilter) ([]dnd5e.Reference, error) {
	out := append([]dnd5e.Reference(nil), spells...)
	for _, filter := range filters {
		resolved, err := r.client.ResolveSpellFilter(ctx, &aidedd.ResolveSpellFilterInput{Filter: filter})
		if err != nil {
			if err := r.fail("filter:"+filter.String(), err); err != nil {
				return nil, errors.Wrapf(err, "failed to resolve spell filter %s", filter)
			}
			continue
		}
		slog.Debug("Expanded spell filter", "filter", filter.String(), "spells", len(resolved.References))
		out = append(out, resolved.References...)
	}
	return out, nil
}

// resolveKind scrapes one kind of reference and renders the sorted records
func resolveKind[R fmt.Stringer, T any](
	ctx context.Context,
	r *generation,
	kind string,
	refs []R,
	scrape func(context.Context, R) (T, error),
	compare func(a, b T) int,
	draw func(T) (*render.Card, error),
	refOf func(T) string,
) error {
	if len(refs) == 0 {
		return nil
	}

	resolved, err := batch.Resolve(ctx, &batch.ResolveInput[R, T]{
		Kind:       kind,
		References: refs,
		Scrape:     scrape,
		Compare:    compare,
		Options:    r.options,
	})
	if err != nil {
		return err
	}
	r.output.Failures = append(r.output.Failures, resolved.Failures...)

	for _, record := range resolved.Records {
		card, err := draw(record)
		if err != nil {
			if err := r.fail(refOf(record), err); err != nil {
				return errors.Wrapf(err, "failed to render %s %s", kind, refOf(record))
			}
			continue
		}
		r.output.Cards = append(r.output.Cards, card)
	}
	return nil
}
