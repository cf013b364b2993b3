package vocab

import "strconv"

// DamageDie is a die size used in damage formulas
type DamageDie int

const (
	DieD4 DamageDie = iota
	DieD6
	DieD8
	DieD10
	DieD12
	DieD20
	DieD100
	numDamageDice
)

var damageDieTable = [...]entry{
	DieD4:   {id: "d4", fr: "d4", en: "d4", icon: "a"},
	DieD6:   {id: "d6", fr: "d6", en: "d6", icon: "b"},
	DieD8:   {id: "d8", fr: "d8", en: "d8", icon: "c"},
	DieD10:  {id: "d10", fr: "d10", en: "d10", icon: "d"},
	DieD12:  {id: "d12", fr: "d12", en: "d12", icon: "e"},
	DieD20:  {id: "d20", fr: "d20", en: "d20", icon: "f"},
	DieD100: {id: "d100", fr: "d100", en: "d100"},
}

var _ = [1]struct{}{}[len(damageDieTable)-int(numDamageDice)]

var damageDice = newVocabulary[DamageDie]("die", damageDieTable[:])

func (d DamageDie) ID() string     { return damageDice.entry(d).id }
func (d DamageDie) String() string { return d.ID() }

// Sides is the number of faces of the die
func (d DamageDie) Sides() int {
	sides, err := strconv.Atoi(d.ID()[1:])
	if err != nil {
		return 0
	}
	return sides
}

// Glyph is the markup drawing the die with the card font. The d100 has no
// glyph and renders as plain text.
func (d DamageDie) Glyph() string {
	if letter := damageDice.entry(d).icon; letter != "" {
		return "<dice>" + letter + "</dice>"
	}
	return d.ID()
}

// ParseDamageDie parses a die token such as "d6"
func ParseDamageDie(text string) (DamageDie, error) {
	return damageDice.parse(text, English)
}

func AllDamageDice() []DamageDie { return damageDice.members() }
