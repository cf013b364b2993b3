package vocab

// CreatureType is a creature category, used in spell targeting text
type CreatureType int

const (
	CreatureAberration CreatureType = iota
	CreatureBeast
	CreatureCelestial
	CreatureConstruct
	CreatureDragon
	CreatureElemental
	CreatureFey
	CreatureFiend
	CreatureGiant
	CreatureHumanoid
	CreatureMonstrosity
	CreatureOoze
	CreaturePlant
	CreatureUndead
	numCreatureTypes
)

var creatureTypeTable = [...]entry{
	CreatureAberration:  {id: "aberration", fr: "aberration", en: "aberration"},
	CreatureBeast:       {id: "beast", fr: "bête", en: "beast"},
	CreatureCelestial:   {id: "celestial", fr: "céleste", en: "celestial"},
	CreatureConstruct:   {id: "construct", fr: "artificiel", en: "construct"},
	CreatureDragon:      {id: "dragon", fr: "dragon", en: "dragon"},
	CreatureElemental:   {id: "elemental", fr: "élémentaire", en: "elemental"},
	CreatureFey:         {id: "fey", fr: "fée", en: "fey"},
	CreatureFiend:       {id: "fiend", fr: "fiélon", en: "fiend"},
	CreatureGiant:       {id: "giant", fr: "géant", en: "giant"},
	CreatureHumanoid:    {id: "humanoid", fr: "humanoïde", en: "humanoid"},
	CreatureMonstrosity: {id: "monstrosity", fr: "monstruosité", en: "monstrosity"},
	CreatureOoze:        {id: "ooze", fr: "vase", en: "ooze"},
	CreaturePlant:       {id: "plant", fr: "plante", en: "plant"},
	CreatureUndead:      {id: "undead", fr: "mort-vivant", en: "undead"},
}

var _ = [1]struct{}{}[len(creatureTypeTable)-int(numCreatureTypes)]

var creatureTypes = newVocabulary[CreatureType]("creature type", creatureTypeTable[:])

func (c CreatureType) Translate(lang Language) string { return creatureTypes.translate(c, lang) }
func (c CreatureType) ID() string                     { return creatureTypes.entry(c).id }
func (c CreatureType) String() string                 { return c.ID() }

func ParseCreatureType(text string, lang Language) (CreatureType, error) {
	return creatureTypes.parse(text, lang)
}

func CreatureTypePattern(lang Language) string { return creatureTypes.pattern[lang] }

func AllCreatureTypes() []CreatureType { return creatureTypes.members() }
