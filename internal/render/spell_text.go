package render

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// spellWording is the fixed text and the shortening rules of spell cards in
// one language
type spellWording struct {
	cantrip        string
	levelLabel     func(level int) string
	upcasting      string
	materials      string
	reaction       string
	reactionPrefix string

	castingTime *strings.Replacer
	time        *strings.Replacer
	distance    *strings.Replacer
	duration    *strings.Replacer

	upcastingClauses []*regexp.Regexp
	dimension        *regexp.Regexp
}

var spellWordings = map[vocab.Language]*spellWording{
	vocab.French: {
		cantrip:        "Tour de magie",
		levelLabel:     func(level int) string { return "Niveau " + itoa(level) },
		upcasting:      "Aux niveaux supérieurs",
		materials:      "Matériaux",
		reaction:       "Réaction",
		reactionPrefix: "Vous lancez ce sort via votre réaction",

		castingTime: strings.NewReplacer("1 action bonus", "a. bonus", "1 action", "action"),
		time: strings.NewReplacer(
			"heures", "h",
			"heure", "h",
			"minutes", "min",
			"minute", "min",
			"jours", "j",
			"jour", "j",
			"Instantanée", "Instant.",
			"dissipation ou déclenchement", "Illimitée",
		),
		distance: strings.NewReplacer(
			"mètres", "m",
			"mètre", "m",
			"Personnelle", "Perso.",
			"kilom", "km",
		),
		duration: strings.NewReplacer("Jusqu'à", "", "Jusqu’à", "", "(voir ci-dessous)", ""),

		upcastingClauses: []*regexp.Regexp{
			regexp.MustCompile(`\s*(?:Lorsque|Si) vous lancez ce sort en utilisant un emplacement de sort de niveau \d ou supérieur,\s*`),
			regexp.MustCompile(` d'emplacement au-delà du niveau \d`),
		},
		dimension: regexp.MustCompile(`\d+(?:[,.]\d+)? m\p{L}+`),
	},
	vocab.English: {
		cantrip:        "Cantrip",
		levelLabel:     func(level int) string { return ordinal(level) + " level" },
		upcasting:      "At higher levels",
		materials:      "Materials",
		reaction:       "Reaction",
		reactionPrefix: "You cast this spell using your reaction",

		castingTime: strings.NewReplacer(),
		time: strings.NewReplacer(
			"hours", "h",
			"hour", "h",
			"minutes", "min",
			"minute", "min",
			"days", "d",
			"day", "d",
			"Instantaneous", "Instant.",
		),
		distance: strings.NewReplacer(
			"-foot", " ft",
			"feet", "ft",
			"foot", "ft",
		),
		duration: strings.NewReplacer(),

		upcastingClauses: []*regexp.Regexp{
			regexp.MustCompile(`\s*When you cast this spell using a spell slot of \d\w+ level or higher,\s*`),
			regexp.MustCompile(` for each slot level above \d(?:st|nd|rd|th)`),
		},
		dimension: regexp.MustCompile(`\d+(?:[,.]\d+)?(?:-| )f(?:oo|ee)t`),
	},
}

var parenthetical = regexp.MustCompile(`\([^)]+\)`)

// ordinal renders 1st, 2nd, 3rd, 4th
func ordinal(n int) string {
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			return itoa(n) + "st"
		case 2:
			return itoa(n) + "nd"
		case 3:
			return itoa(n) + "rd"
		}
	}
	return itoa(n) + "th"
}

// capitalize upper-cases the first letter and leaves the rest untouched
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (w *spellWording) shortenCastingTime(text string) string {
	return w.time.Replace(capitalize(w.castingTime.Replace(text)))
}

func (w *spellWording) shortenDuration(text string) string {
	return capitalize(strings.TrimSpace(w.time.Replace(w.duration.Replace(text))))
}

func (w *spellWording) shortenDistance(text string) string {
	return w.distance.Replace(text)
}

func (w *spellWording) shortenUpcasting(text string) string {
	for _, clause := range w.upcastingClauses {
		text = clause.ReplaceAllString(text, "")
	}
	return capitalize(strings.TrimSpace(text))
}
