// Package render assembles scraped records into rpg-cards cards. A card body
// is a list of content tokens, each a kind followed by pipe separated
// arguments, which the card template interprets.
package render

import "strings"

// Kind is the first element of a content token
type Kind string

const (
	KindTitle           Kind = "title"
	KindSubtitle        Kind = "subtitle"
	KindSection         Kind = "section"
	KindText            Kind = "text"
	KindPropertyInline  Kind = "property_inline"
	KindHeaderSeparator Kind = "header_separator"
	KindFill            Kind = "fill"
	KindLevel           Kind = "level"
	KindBoxes           Kind = "boxes"
	KindSpellSchool     Kind = "spell_school"
	KindCardType        Kind = "card_type"
)

const tokenSeparator = " | "

// Token is one line of a card body
type Token struct {
	Kind Kind
	Args []string
}

// String renders the token as "kind | arg | arg". A token without arguments
// keeps its trailing separator, "fill |".
func (t Token) String() string {
	if len(t.Args) == 0 {
		return string(t.Kind) + " |"
	}
	return string(t.Kind) + tokenSeparator + strings.Join(t.Args, tokenSeparator)
}

func newToken(kind Kind, args ...string) Token {
	return Token{Kind: kind, Args: args}
}

// Title is the title line, with an optional icon
func Title(text, icon string) Token {
	if icon == "" {
		return newToken(KindTitle, text)
	}
	return newToken(KindTitle, text, iconMarkup(icon))
}

func Subtitle(text string) Token { return newToken(KindSubtitle, text) }

func Section(text string) Token { return newToken(KindSection, text) }

func Text(text string) Token { return newToken(KindText, text) }

// PropertyInline is a markup glyph followed by a short value. An empty
// glyph and value pads a row of a table.
func PropertyInline(glyph, text string) Token {
	return newToken(KindPropertyInline, glyph, text)
}

// IconProperty is a property drawn with a game icon
func IconProperty(icon, text string) Token {
	return PropertyInline(iconMarkup(icon), text)
}

func HeaderSeparator() Token { return newToken(KindHeaderSeparator) }

func Fill() Token { return newToken(KindFill) }

// Boxes draws count check boxes of the given size in em
func Boxes(count int, size string) Token {
	return newToken(KindBoxes, itoa(count), size)
}

// Level is the badge of a spell level
func Level(level int) Token { return newToken(KindLevel, itoa(level)) }

// SpellSchool selects the school background of a spell card
func SpellSchool(school string) Token { return newToken(KindSpellSchool, school) }

// CardType selects the background of a non spell card
func CardType(kind string) Token { return newToken(KindCardType, kind) }

// Strings renders every token of a card body
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
