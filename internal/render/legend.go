package render

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const diceLegendColumns = 6

type legendWording struct {
	title       string
	dice        string
	damageTypes string
	spellTypes  string
	spellShapes string
	collation   language.Tag
}

var legendWordings = map[vocab.Language]legendWording{
	vocab.French: {
		title:       "Légende",
		dice:        "Dés",
		damageTypes: "Dégâts",
		spellTypes:  "Types de sort",
		spellShapes: "Formes de sort",
		collation:   language.French,
	},
	vocab.English: {
		title:       "Legend",
		dice:        "Dice",
		damageTypes: "Damages",
		spellTypes:  "Spell types",
		spellShapes: "Spell shapes",
		collation:   language.English,
	},
}

// legendEntry is one icon of the legend with its caption
type legendEntry struct {
	icon    string
	caption string
}

// Legend renders the card explaining the dice glyphs and the icons used on
// spell cards
func (r *Renderer) Legend(lang vocab.Language) (*Card, error) {
	wording, ok := legendWordings[lang]
	if !ok {
		return nil, errors.InvalidArgumentf("unsupported language %q", lang).WithMeta("lang", string(lang))
	}

	tokens := []Token{
		Title(wording.title, ""),
		CardType("legend"),
		HeaderSeparator(),
	}
	tokens = append(tokens, diceLegend(wording)...)

	damageTypes := make([]legendEntry, 0)
	for _, d := range vocab.AllDamageTypes() {
		damageTypes = append(damageTypes, legendEntry{icon: d.Icon(), caption: d.Translate(lang)})
	}
	tokens = append(tokens, Section(wording.damageTypes))
	tokens = append(tokens, iconTable(damageTypes, 4, wording.collation)...)

	spellTypes := make([]legendEntry, 0)
	for _, t := range vocab.AllSpellTypes() {
		spellTypes = append(spellTypes, legendEntry{icon: t.Icon(), caption: t.Translate(lang)})
	}
	tokens = append(tokens, Section(wording.spellTypes))
	tokens = append(tokens, iconTable(spellTypes, 3, wording.collation)...)

	shapes := make([]legendEntry, 0)
	for _, s := range vocab.AllSpellShapes() {
		// radius and hemisphere share the icons of circle and sphere
		if s == vocab.ShapeRadius || s == vocab.ShapeHemisphere {
			continue
		}
		shapes = append(shapes, legendEntry{icon: s.Icon(), caption: s.Translate(lang)})
	}
	tokens = append(tokens, Section(wording.spellShapes))
	tokens = append(tokens, iconTable(shapes, 4, wording.collation)...)
	tokens = append(tokens, Fill())

	card := newCard(wording.title, ColorLegend, "", tokens)
	card.Tags = []string{"legend"}
	return card, nil
}

// diceLegend lists the dice that have a glyph, six per row
func diceLegend(wording legendWording) []Token {
	tokens := []Token{Section(wording.dice), Text("")}
	var row int
	for _, die := range vocab.AllDamageDice() {
		if die.Glyph() == die.ID() {
			continue
		}
		tokens = append(tokens, PropertyInline(die.Glyph(), die.ID()))
		row++
		if row == diceLegendColumns {
			tokens = append(tokens, Fill())
			row = 0
		}
	}
	if row > 0 {
		tokens = append(tokens, Fill())
	}
	return tokens
}

// iconTable lays entries out in rows of the given width, sorted by caption
// in the collation order of the card language. The last row is padded with
// empty properties.
func iconTable(entries []legendEntry, columns int, collation language.Tag) []Token {
	props := make([]legendEntry, 0, len(entries))
	captions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.icon == "" {
			continue
		}
		e.caption = capitalize(e.caption)
		props = append(props, e)
		captions = append(captions, e.caption)
	}

	order := make(map[string]legendEntry, len(props))
	for _, p := range props {
		order[p.caption] = p
	}
	collate.New(collation, collate.Loose).SortStrings(captions)

	tokens := []Token{Text("")}
	for i, caption := range captions {
		e := order[caption]
		tokens = append(tokens, IconProperty(e.icon, e.caption))
		if (i+1)%columns == 0 {
			tokens = append(tokens, Fill())
		}
	}
	if rem := len(captions) % columns; rem != 0 {
		for i := rem; i < columns; i++ {
			tokens = append(tokens, PropertyInline("", ""))
		}
		tokens = append(tokens, Fill())
	}
	return tokens
}
