package render

import (
	"strconv"

	"github.com/KirkDiggler/rpg-cards/internal/formatter"
)

// Card is one card in the rpg-cards JSON format
type Card struct {
	Count           int      `json:"count"`
	Color           string   `json:"color"`
	Title           string   `json:"title"`
	Icon            string   `json:"icon"`
	Contents        []string `json:"contents"`
	BackgroundImage string   `json:"background_image,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

func newCard(title, color, icon string, tokens []Token) *Card {
	return &Card{
		Count:    1,
		Color:    color,
		Title:    title,
		Icon:     icon,
		Contents: Strings(tokens),
	}
}

func iconMarkup(name string) string { return formatter.Icon(name) }

func itoa(n int) string { return strconv.Itoa(n) }

// textTokens wraps each formatted paragraph in a text token
func textTokens(parts []string) []Token {
	out := make([]Token, len(parts))
	for i, part := range parts {
		out[i] = Text(part)
	}
	return out
}
