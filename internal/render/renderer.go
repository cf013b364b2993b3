package render

import (
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/formatter"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// Card colors of the non spell kinds
const (
	ColorFeat               = "#37352b"
	ColorEldritchInvocation = "#994094"
	ColorClassFeature       = "indianred"
	ColorAncestryFeature    = "#458f36de"
	ColorBackground         = "#ff9aac"
	ColorLegend             = "LightCoral"
)

// Card icons
const (
	IconSpellDefault       = "scroll-unfurled"
	IconFeat               = "stars-stack"
	IconEldritchInvocation = "cursed-star"
	IconAncestryFeature    = "elf-helmet"
	IconBackground         = "fluffy-trefoil"
	IconAttunement         = "empty-hourglass"
	IconCastingTime        = "ink-swirl"
	IconRange              = "hand"
	IconDuration           = "sands-of-time"
	IconComponents         = "drink-me"
	IconConcentration      = "eye-target"
	IconRitual             = "pentacle"
)

// Config holds the renderer settings
type Config struct {
	// SpellLevelColors holds one color per spell level, cantrips first
	SpellLevelColors []string
}

// Validate checks the palette covers every spell level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.SpellLevelColors) != spellLevels {
		vb.Fieldf("spell_level_colors", "expected %d colors, got %d", spellLevels, len(c.SpellLevelColors))
	}
	for i, color := range c.SpellLevelColors {
		if color == "" {
			vb.Fieldf("spell_level_colors", "color of level %d is empty", i)
		}
	}
	return vb.Build()
}

const spellLevels = 10

// Renderer turns records into cards
type Renderer struct {
	spellLevelColors []string
	pipelines        map[vocab.Language]*formatter.Pipeline
}

// New builds a renderer with a text pipeline per supported language
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid render config")
	}

	pipelines := make(map[vocab.Language]*formatter.Pipeline, len(vocab.Languages))
	for _, lang := range vocab.Languages {
		p, err := formatter.New(lang)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build %s text pipeline", lang)
		}
		pipelines[lang] = p
	}

	return &Renderer{
		spellLevelColors: append([]string(nil), cfg.SpellLevelColors...),
		pipelines:        pipelines,
	}, nil
}

func (r *Renderer) pipeline(lang vocab.Language) (*formatter.Pipeline, error) {
	p, ok := r.pipelines[lang]
	if !ok {
		return nil, errors.InvalidArgumentf("unsupported language %q", lang).WithMeta("lang", string(lang))
	}
	return p, nil
}

// format runs the text pipeline of lang over paragraphs
func (r *Renderer) format(lang vocab.Language, paragraphs []string) ([]string, error) {
	p, err := r.pipeline(lang)
	if err != nil {
		return nil, err
	}
	return p.Format(paragraphs), nil
}
