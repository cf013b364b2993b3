// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-cards/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var hyphenRuns = regexp.MustCompile(`-+`)

// generateSlug turns an English spell title into the API index,
// e.g. "Melf's Acid Arrow" -> "melfs-acid-arrow"
func generateSlug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.NewReplacer("'", "", "’", "", "/", "-").Replace(slug)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client defines the interface for external API interactions
type Client interface {
	// GetSpellData fetches spell information by English title or API index
	GetSpellData(ctx context.Context, spellID string) (*SpellData, error)
}

// spellAPI is the part of the dnd5e-api client this package uses
type spellAPI interface {
	GetSpell(key string) (*entities.Spell, error)
}

type client struct {
	dnd5eClient spellAPI
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetSpellData(_ context.Context, spellID string) (*SpellData, error) {
	apiID := generateSlug(spellID)
	if apiID == "" {
		return nil, errors.InvalidArgument("spell id is required")
	}

	spell, err := c.dnd5eClient.GetSpell(apiID)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to get spell %s (api: %s)", spellID, apiID).
			WithMeta("api_id", apiID)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found (api: %s)", spellID, apiID)
	}

	slog.Debug("Loaded spell from D&D 5e API", "spell", spell.Name, "api_id", apiID)

	return convertSpellToSpellData(spell), nil
}

// convertSpellToSpellData converts a dnd5e-api spell entity to our internal SpellData format
func convertSpellToSpellData(spell *entities.Spell) *SpellData {
	data := &SpellData{
		ID:            spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		Ritual:        spell.Ritual,
		Concentration: spell.Concentration,
	}

	if spell.SpellSchool != nil {
		data.School = spell.SpellSchool.Name
	}

	if spell.AreaOfEffect != nil {
		data.AreaType = strings.ToLower(fmt.Sprint(spell.AreaOfEffect.Type))
		data.AreaSize = int(spell.AreaOfEffect.Size)
	}

	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageType != nil {
		data.DamageType = spell.SpellDamage.SpellDamageType.Name
	}

	if spell.DC != nil && spell.DC.DCType != nil {
		data.SavingThrow = spell.DC.DCType.Name
	}

	for _, class := range spell.SpellClasses {
		if class != nil {
			data.Classes = append(data.Classes, class.Name)
		}
	}

	return data
}
