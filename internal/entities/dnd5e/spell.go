package dnd5e

import "github.com/KirkDiggler/rpg-cards/internal/vocab"

// Spell is a spell scraped from the rules site.
//
// Paragraphs and UpcastingText carry the sentinel markers of the sanitizer:
// _x_ for emphasis, *x* for a bold lead-in and a leading "• " for bullets.
type Spell struct {
	Reference Reference

	Title string
	// CanonicalTitle is the title in the other language, used to look up
	// auxiliary metadata
	CanonicalTitle string
	Language       vocab.Language

	Level  int // 0 for cantrips
	School vocab.MagicSchool

	CastingTime    string
	CastingRange   string
	EffectDuration string

	Verbal   bool
	Somatic  bool
	Material bool
	// PayingComponentsText is the costly part of the material components,
	// empty when Material is false
	PayingComponentsText string

	Concentration bool
	Ritual        bool

	Paragraphs    []string
	UpcastingText string
	ClassTags     []string

	DamageType *vocab.DamageType
	Shape      *vocab.SpellShape
	SpellType  *vocab.SpellType
	// ReactionCondition is the trigger of a spell cast as a reaction
	ReactionCondition string
}

// IsCantrip reports a level 0 spell
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}
