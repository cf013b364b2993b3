package vocab

// SpellType is the broad purpose of a spell, shown as an icon on the card
type SpellType int

const (
	SpellTypeAreaOfEffect SpellType = iota
	SpellTypeBuff
	SpellTypeDebuff
	SpellTypeHealing
	SpellTypeUtility
	SpellTypeDamage
	numSpellTypes
)

var spellTypeTable = [...]entry{
	SpellTypeAreaOfEffect: {id: "aoe", fr: "zone", en: "area of effect", icon: "fire-ring", aliases: []string{"aoe"}},
	SpellTypeBuff:         {id: "buff", fr: "bonus", en: "buff", icon: "armor-upgrade"},
	SpellTypeDebuff:       {id: "debuff", fr: "malus", en: "debuff", icon: "armor-downgrade"},
	SpellTypeHealing:      {id: "healing", fr: "soins", en: "healing", icon: "health-potion"},
	SpellTypeUtility:      {id: "utility", fr: "utilitaire", en: "utility", icon: "toolbox"},
	SpellTypeDamage:       {id: "damage", fr: "offensif", en: "damage", icon: "bloody-sword"},
}

var _ = [1]struct{}{}[len(spellTypeTable)-int(numSpellTypes)]

var spellTypes = newVocabulary[SpellType]("spell type", spellTypeTable[:])

func (t SpellType) Translate(lang Language) string { return spellTypes.translate(t, lang) }
func (t SpellType) ID() string                     { return spellTypes.entry(t).id }
func (t SpellType) Icon() string                   { return spellTypes.entry(t).icon }
func (t SpellType) String() string                 { return t.ID() }

func ParseSpellType(text string, lang Language) (SpellType, error) {
	return spellTypes.parse(text, lang)
}

// SpellTypeByID resolves the identifiers stored in the spell metadata table
func SpellTypeByID(id string) (SpellType, bool) {
	for _, t := range spellTypes.members() {
		if t.ID() == id {
			return t, true
		}
	}
	return 0, false
}

func SpellTypePattern(lang Language) string { return spellTypes.pattern[lang] }

func AllSpellTypes() []SpellType { return spellTypes.members() }
