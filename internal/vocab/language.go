// Package vocab holds the closed, bilingual vocabularies shared by the
// scrapers and the card renderer: magic schools, damage types, spell shapes,
// item kinds, rarities, classes, ancestries, creature types, actions and dice.
//
// Every vocabulary is an integer type backed by an exhaustive table with a
// display string per language. Lookups from free text go through the
// Parse* functions and fail with a LookupFailure instead of defaulting.
package vocab

import (
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

// Language is a language the rules site publishes in
type Language string

const (
	// French pages are addressed with the vf query parameter
	French Language = "fr"
	// English pages are addressed with the vo query parameter
	English Language = "en"
)

// Languages lists every supported language
var Languages = []Language{French, English}

// ParseLanguage validates a user supplied language code
func ParseLanguage(code string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case French:
		return French, nil
	case English:
		return English, nil
	}
	return "", errors.InvalidArgumentf("unsupported language %q, expected fr or en", code).
		WithMeta("lang", code)
}

// Other returns the second supported language
func (l Language) Other() Language {
	if l == French {
		return English
	}
	return French
}

// QueryParam is the query parameter carrying a page slug on the rules site
func (l Language) QueryParam() string {
	if l == French {
		return "vf"
	}
	return "vo"
}

func (l Language) String() string {
	return string(l)
}
