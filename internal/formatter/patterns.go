package formatter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

type languagePatterns struct {
	damage       *regexp.Regexp
	savingThrows []*regexp.Regexp
	level        *regexp.Regexp
	actions      *regexp.Regexp
	fixes        *strings.Replacer
}

const dieGroup = `\b(?P<num>\d+)?(?P<die>d(?:4|6|8|10|12|20|100))\b`

var patternsByLanguage = map[vocab.Language]*languagePatterns{
	vocab.English: {
		damage: regexp.MustCompile(`(?:(?P<prefix>one) )?` + dieGroup +
			`(?: (?P<extra>\+ your spellcasting ability modifier)` +
			`| (?P<t1>\p{L}+) (?:or (?P<t2>\p{L}+) )?damage)?`),
		savingThrows: []*regexp.Regexp{
			regexp.MustCompile(`\w+ saving throw`),
			regexp.MustCompile(`half as much damage on a successful one`),
		},
		level:   regexp.MustCompile(`\d+(?:st|nd|rd|th) level`),
		actions: actionPattern(vocab.English),
	},
	vocab.French: {
		damage: regexp.MustCompile(`(?:(?P<prefix>un) )?` + dieGroup +
			`(?: (?P<extra>\+ le modificateur de votre caractéristique d'incantation)` +
			`| (?:de )?dégâts (?:de |d'|d’)?(?P<t1>\p{L}+)(?: ou (?:de |d'|d’)(?P<t2>\p{L}+))?)?`),
		savingThrows: []*regexp.Regexp{
			regexp.MustCompile(`jets? de sauvegarde de [A-Z]\p{L}+`),
			regexp.MustCompile(`la moitié de ces dégâts en cas de réussite`),
		},
		level:   regexp.MustCompile(`niveau \d+`),
		actions: actionPattern(vocab.French),
		fixes:   strings.NewReplacer("de un dé", "d'un dé", " [E]", ""),
	},
}

// actionPattern matches an action name after a separator. The end of the
// name is checked by endsAction, leaving the next separator free to start
// another match.
func actionPattern(lang vocab.Language) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[\s(])(` + vocab.ActionPattern(lang) + `)`)
}

func endsAction(text string, end int) bool {
	if end == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return unicode.IsSpace(r) || strings.ContainsRune(".,;:)", r)
}
