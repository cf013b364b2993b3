package dnd5e

import "github.com/KirkDiggler/rpg-cards/internal/vocab"

// ClassFeature is one feature section of a class rules page
type ClassFeature struct {
	Reference ClassFeatureReference
	Language  vocab.Language
	Class     vocab.CharacterClass
	Title     string
	// ClassVariant is the subclass the feature belongs to, empty for
	// features of the base class
	ClassVariant string
	Paragraphs   []string
}
