// Package scraping turns rules pages into typed records. Each Scrape method
// fetches one page through the page client, reads the fixed regions of the
// page, then applies the text rules of its record kind.
package scraping

//go:generate mockgen -destination=mock/mock_scraper.go -package=scrapingmock github.com/KirkDiggler/rpg-cards/internal/scraping Scraper

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html/atom"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	spellmetadata "github.com/KirkDiggler/rpg-cards/internal/repositories/spell_metadata"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// Scraper defines the interface for scraping one record from the rules site
type Scraper interface {
	ScrapeSpell(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Spell, error)
	ScrapeMagicItem(ctx context.Context, ref dnd5e.Reference) (*dnd5e.MagicItem, error)
	ScrapeFeat(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Feat, error)
	ScrapeEldritchInvocation(ctx context.Context, ref dnd5e.Reference) (*dnd5e.EldritchInvocation, error)
	ScrapeClassFeature(ctx context.Context, ref dnd5e.ClassFeatureReference) (*dnd5e.ClassFeature, error)
	ScrapeAncestryFeature(ctx context.Context, ref dnd5e.AncestryFeatureReference) (*dnd5e.AncestryFeature, error)
	ScrapeBackground(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Background, error)
}

// Config holds the dependencies of the scraper
type Config struct {
	Client aidedd.Client

	// SpellMetadata supplies spell shapes and types (optional)
	SpellMetadata spellmetadata.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	return vb.Build()
}

type scraper struct {
	client        aidedd.Client
	spellMetadata spellmetadata.Repository

	// inline formatting only; strong lead-ins stay separate fragments
	inline *dom.Sanitizer
	// everything flattened, one fragment per block
	blocks *dom.Sanitizer
}

// New creates a scraper
func New(cfg *Config) (Scraper, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &scraper{
		client:        cfg.Client,
		spellMetadata: cfg.SpellMetadata,
		inline:        dom.NewSanitizer(atom.A, atom.Em, atom.I, atom.Span, atom.Li),
		blocks:        dom.NewSanitizer(),
	}, nil
}

var _ Scraper = (*scraper)(nil)

// fetch loads and parses one page
func (s *scraper) fetch(ctx context.Context, resource aidedd.Resource, ref dnd5e.Reference) (*dom.Page, error) {
	out, err := s.client.FetchPage(ctx, &aidedd.FetchPageInput{
		Resource:  resource,
		Reference: ref,
	})
	if err != nil {
		return nil, err
	}
	return dom.Parse(ref.Slug, out.HTML)
}

// failed adds the reference to an error leaving a scraper
func failed(err error, kind string, ref interface{ String() string }, lang vocab.Language) error {
	return errors.Wrapf(err, "failed to scrape %s %s", kind, ref.String()).
		WithMeta("lang", lang.String()).
		WithMeta("reference", ref.String())
}

// capitalize upper-cases the first letter and leaves the rest untouched
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// stripLabels removes every localized label from a property value
func stripLabels(text string, labels map[vocab.Language]string) string {
	for _, label := range labels {
		text = strings.ReplaceAll(text, label, "")
	}
	return strings.TrimSpace(text)
}

// hasPrefixFold reports a case-insensitive prefix, ignoring sentinels
func hasPrefixFold(text, prefix string) bool {
	text = strings.ToLower(dom.StripSentinels(text))
	return strings.HasPrefix(text, strings.ToLower(prefix))
}
