package formatter

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// DamageFormula is a dice expression found in rules text, such as
// "2d8 lightning or thunder damage"
type DamageFormula struct {
	// Count is zero when the text names a single die without a count ("a d20")
	Count int
	Die   vocab.DamageDie
	Types []vocab.DamageType
	// Extra is a modifier written after the dice
	Extra string
}

// NewDamageFormula validates a count and die token such as (8, "d6")
func NewDamageFormula(count int, die string) (*DamageFormula, error) {
	parsed, err := vocab.ParseDamageDie(die)
	if err != nil {
		return nil, err
	}
	if _, err := dice.NewRoll(max(count, 1), parsed.Sides()); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid damage formula %d%s", count, die)
	}
	return &DamageFormula{Count: count, Die: parsed}, nil
}

// Notation is the formula in dice notation, e.g. 8d6
func (f *DamageFormula) Notation() string {
	if f.Count == 0 {
		return f.Die.ID()
	}
	return strconv.Itoa(f.Count) + f.Die.ID()
}

// Render draws the notation followed by the damage type icons and the modifier
func (f *DamageFormula) Render() string {
	var sb strings.Builder
	sb.WriteString(f.Notation())
	for _, t := range f.Types {
		sb.WriteString(" ")
		sb.WriteString(Icon(t.Icon()))
	}
	if f.Extra != "" {
		sb.WriteString(" ")
		sb.WriteString(f.Extra)
	}
	return sb.String()
}

// HighlightDamageFormulas replaces every damage formula of text with its
// bold rendering. Damage type words that are not damage types are left in
// the text after the formula.
func (p *Pipeline) HighlightDamageFormulas(text string) string {
	re := p.patterns.damage
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	group := func(m []int, name string) (string, int, int) {
		i := re.SubexpIndex(name)
		if i < 0 || m[2*i] < 0 {
			return "", -1, -1
		}
		return text[m[2*i]:m[2*i+1]], m[2*i], m[2*i+1]
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m[0]])
		last = m[1]

		prefix, _, _ := group(m, "prefix")
		num, _, _ := group(m, "num")
		die, _, dieEnd := group(m, "die")

		count := 0
		if num != "" {
			count, _ = strconv.Atoi(num)
		} else if prefix != "" {
			count = 1
		}

		formula, err := NewDamageFormula(count, die)
		if err != nil {
			sb.WriteString(text[m[0]:m[1]])
			continue
		}

		formula.Extra, _, _ = group(m, "extra")

		t1, _, _ := group(m, "t1")
		t2, _, _ := group(m, "t2")
		types, ok := p.damageTypes(t1, t2)
		if !ok {
			// not a damage type: highlight the dice only
			sb.WriteString(Strong(formula.Render()))
			sb.WriteString(text[dieEnd:m[1]])
			continue
		}
		formula.Types = types
		sb.WriteString(Strong(formula.Render()))
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func (p *Pipeline) damageTypes(words ...string) ([]vocab.DamageType, bool) {
	var types []vocab.DamageType
	for _, word := range words {
		if word == "" {
			continue
		}
		t, err := vocab.ParseDamageType(strings.TrimSuffix(word, "s"), p.lang)
		if err != nil {
			return nil, false
		}
		types = append(types, t)
	}
	return types, true
}
