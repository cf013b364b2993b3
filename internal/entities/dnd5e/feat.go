package dnd5e

import "github.com/KirkDiggler/rpg-cards/internal/vocab"

// Feat is a feat scraped from the rules site
type Feat struct {
	Reference    Reference
	Language     vocab.Language
	Title        string
	Prerequisite string
	Paragraphs   []string
}

// EldritchInvocation is a warlock invocation. It has the shape of a feat and
// differs only in how its card is dressed.
type EldritchInvocation struct {
	Reference    Reference
	Language     vocab.Language
	Title        string
	Prerequisite string
	Paragraphs   []string
}
