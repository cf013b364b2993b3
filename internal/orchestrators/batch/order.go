package batch

import (
	"cmp"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
)

// CompareSpells orders spells by level, then title
func CompareSpells(a, b *dnd5e.Spell) int {
	if c := cmp.Compare(a.Level, b.Level); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}

// CompareMagicItems orders items by rarity, then title
func CompareMagicItems(a, b *dnd5e.MagicItem) int {
	if c := cmp.Compare(a.Rarity.Rank(), b.Rarity.Rank()); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}

// CompareFeats orders feats by title
func CompareFeats(a, b *dnd5e.Feat) int {
	return strings.Compare(a.Title, b.Title)
}

// CompareEldritchInvocations orders invocations by title
func CompareEldritchInvocations(a, b *dnd5e.EldritchInvocation) int {
	return strings.Compare(a.Title, b.Title)
}

// CompareClassFeatures orders class features by title
func CompareClassFeatures(a, b *dnd5e.ClassFeature) int {
	return strings.Compare(a.Title, b.Title)
}

// CompareAncestryFeatures orders by the card title, the sub-ancestry when set
func CompareAncestryFeatures(a, b *dnd5e.AncestryFeature) int {
	return strings.Compare(ancestryTitle(a), ancestryTitle(b))
}

// CompareBackgrounds orders backgrounds by title
func CompareBackgrounds(a, b *dnd5e.Background) int {
	return strings.Compare(a.Title, b.Title)
}

func ancestryTitle(f *dnd5e.AncestryFeature) string {
	if f.SubAncestry != "" {
		return f.SubAncestry
	}
	return f.Title
}
