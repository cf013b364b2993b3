package render

import (
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// Spell renders a spell card
func (r *Renderer) Spell(spell *dnd5e.Spell) (*Card, error) {
	if spell == nil {
		return nil, errors.InvalidArgument("spell is required")
	}
	if spell.Level < 0 || spell.Level >= len(r.spellLevelColors) {
		return nil, errors.InvalidArgumentf("spell level %d out of range", spell.Level).
			WithMeta("reference", spell.Reference.String())
	}

	p, err := r.pipeline(spell.Language)
	if err != nil {
		return nil, err
	}
	wording := spellWordings[spell.Language]

	tokens := []Token{
		Title(spell.Title, ""),
		Subtitle(spellSubtitle(spell, wording)),
		Level(spell.Level),
		SpellSchool(spell.School.ID()),
		HeaderSeparator(),
	}
	tokens = append(tokens, spellProperties(spell, wording)...)
	tokens = append(tokens, textTokens(p.Format(spell.Paragraphs))...)

	if spell.UpcastingText != "" {
		tokens = append(tokens,
			Section(wording.upcasting),
			Text(p.Highlight(wording.shortenUpcasting(spell.UpcastingText))),
		)
	}
	if spell.PayingComponentsText != "" {
		tokens = append(tokens, Section(wording.materials), Text(spell.PayingComponentsText))
	}
	if spell.ReactionCondition != "" {
		tokens = append(tokens,
			Section(wording.reaction),
			Text(wording.reactionPrefix+", "+spell.ReactionCondition),
		)
	}
	tokens = append(tokens, Fill())

	icon := IconSpellDefault
	if spell.SpellType != nil {
		icon = spell.SpellType.Icon()
	}

	card := newCard(spell.Title, r.spellLevelColors[spell.Level], icon, tokens)
	card.Tags = spellTags(spell)
	return card, nil
}

func spellSubtitle(spell *dnd5e.Spell, wording *spellWording) string {
	school := capitalize(spell.School.Translate(spell.Language))
	if spell.IsCantrip() {
		return wording.cantrip + tokenSeparator + school
	}
	return wording.levelLabel(spell.Level) + tokenSeparator + school
}

func spellProperties(spell *dnd5e.Spell, wording *spellWording) []Token {
	props := []Token{
		IconProperty(IconCastingTime, wording.shortenCastingTime(spell.CastingTime)),
		IconProperty(IconRange, wording.shortenDistance(castingRangeText(spell))),
	}
	if spell.Shape != nil {
		props = append(props, IconProperty(spell.Shape.Icon(), wording.shortenDistance(shapeDimension(spell, wording))))
	}
	props = append(props,
		IconProperty(IconDuration, wording.shortenDuration(spell.EffectDuration)),
		IconProperty(IconComponents, componentLetters(spell)),
	)
	if spell.Concentration {
		props = append(props, IconProperty(IconConcentration, "C"))
	}
	if spell.Ritual {
		props = append(props, IconProperty(IconRitual, "R"))
	}
	return props
}

func componentLetters(spell *dnd5e.Spell) string {
	var letters []string
	if spell.Verbal {
		letters = append(letters, "V")
	}
	if spell.Somatic {
		letters = append(letters, "S")
	}
	if spell.Material {
		letters = append(letters, "M")
	}
	return strings.Join(letters, " ")
}

// radiusInRange reports a round area given as a radius in the range line,
// "Personnelle (rayon de 3 mètres)"
func radiusInRange(spell *dnd5e.Spell) bool {
	if spell.Shape == nil {
		return false
	}
	switch *spell.Shape {
	case vocab.ShapeCircle, vocab.ShapeSphere:
		return strings.Contains(spell.CastingRange, vocab.ShapeRadius.Translate(spell.Language))
	}
	return false
}

// castingRangeText drops the area from the range when the shape property
// already shows it
func castingRangeText(spell *dnd5e.Spell) string {
	if spell.Shape == nil {
		return spell.CastingRange
	}
	if strings.Contains(spell.CastingRange, spell.Shape.Translate(spell.Language)) || radiusInRange(spell) {
		return strings.TrimSpace(parenthetical.ReplaceAllString(spell.CastingRange, ""))
	}
	return spell.CastingRange
}

// shapeDimension finds the size of the area in the range line or in the
// first paragraph naming the shape
func shapeDimension(spell *dnd5e.Spell, wording *spellWording) string {
	if radiusInRange(spell) {
		if dim := wording.dimension.FindString(spell.CastingRange); dim != "" {
			return capitalize(dim)
		}
	}

	name := spell.Shape.Translate(spell.Language)
	texts := append([]string{spell.CastingRange}, spell.Paragraphs...)
	for _, text := range texts {
		text = dom.StripSentinels(text)
		if !strings.Contains(strings.ToLower(text), name) {
			continue
		}
		if dim := wording.dimension.FindString(text); dim != "" {
			return capitalize(dim)
		}
	}
	return ""
}

func spellTags(spell *dnd5e.Spell) []string {
	tags := make([]string, 0, len(spell.ClassTags)+1)
	tags = append(tags, "spell")
	for _, class := range spell.ClassTags {
		tags = append(tags, strings.ToLower(class))
	}
	return tags
}
