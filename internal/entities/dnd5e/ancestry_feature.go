package dnd5e

import "github.com/KirkDiggler/rpg-cards/internal/vocab"

// AncestryFeature is the traits block of an ancestry or sub-ancestry
type AncestryFeature struct {
	Reference   AncestryFeatureReference
	Language    vocab.Language
	Ancestry    vocab.Ancestry
	SubAncestry string
	Title       string
	Paragraphs  []string
}
