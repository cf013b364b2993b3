package cards

import (
	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/batch"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// GenerateInput lists the references to turn into cards
type GenerateInput struct {
	Spells []dnd5e.Reference
	// SpellFilters expand into French spell references
	SpellFilters        []aidedd.SpellFilter
	MagicItems          []dnd5e.Reference
	Feats               []dnd5e.Reference
	EldritchInvocations []dnd5e.Reference
	ClassFeatures       []dnd5e.ClassFeatureReference
	AncestryFeatures    []dnd5e.AncestryFeatureReference
	Backgrounds         []dnd5e.Reference

	// LegendLanguage adds the legend card in that language when set
	LegendLanguage vocab.Language

	// FailFast aborts on the first failure even when the service reports
	// failures by default
	FailFast bool
}

// empty reports an input with nothing to generate
func (i *GenerateInput) empty() bool {
	return len(i.Spells) == 0 &&
		len(i.SpellFilters) == 0 &&
		len(i.MagicItems) == 0 &&
		len(i.Feats) == 0 &&
		len(i.EldritchInvocations) == 0 &&
		len(i.ClassFeatures) == 0 &&
		len(i.AncestryFeatures) == 0 &&
		len(i.Backgrounds) == 0 &&
		i.LegendLanguage == ""
}

// GenerateOutput holds the cards in kind order and every reference that
// could not be turned into a card
type GenerateOutput struct {
	RunID    string
	Cards    []*render.Card
	Failures []batch.Failure
}
