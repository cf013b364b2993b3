package dnd5e

import "github.com/KirkDiggler/rpg-cards/internal/vocab"

// Background is the feature of a character background
type Background struct {
	Reference  Reference
	Language   vocab.Language
	Title      string
	Subtitle   string
	Paragraphs []string
}
