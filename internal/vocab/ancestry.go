package vocab

// Ancestry is a playable ancestry (race)
type Ancestry int

const (
	AncestryDragonborn Ancestry = iota
	AncestryDwarf
	AncestryElf
	AncestryGnome
	AncestryHalfElf
	AncestryHalfOrc
	AncestryHalfling
	AncestryHuman
	AncestryTiefling
	numAncestries
)

var ancestryTable = [...]entry{
	AncestryDragonborn: {id: "dragonborn", fr: "drakéide", en: "dragonborn"},
	AncestryDwarf:      {id: "dwarf", fr: "nain", en: "dwarf"},
	AncestryElf:        {id: "elf", fr: "elfe", en: "elf"},
	AncestryGnome:      {id: "gnome", fr: "gnome", en: "gnome"},
	AncestryHalfElf:    {id: "half_elf", fr: "demi-elfe", en: "half-elf", aliases: []string{"half elf"}},
	AncestryHalfOrc:    {id: "half_orc", fr: "demi-orque", en: "half-orc", aliases: []string{"half orc"}},
	AncestryHalfling:   {id: "halfling", fr: "halfelin", en: "halfling"},
	AncestryHuman:      {id: "human", fr: "humain", en: "human"},
	AncestryTiefling:   {id: "tiefling", fr: "tieffelin", en: "tiefling", aliases: []string{"tieflin"}},
}

var _ = [1]struct{}{}[len(ancestryTable)-int(numAncestries)]

var ancestries = newVocabulary[Ancestry]("ancestry", ancestryTable[:])

func (a Ancestry) Translate(lang Language) string { return ancestries.translate(a, lang) }
func (a Ancestry) ID() string                     { return ancestries.entry(a).id }
func (a Ancestry) String() string                 { return a.ID() }

// ParseAncestry looks up an ancestry by its display name in lang
func ParseAncestry(text string, lang Language) (Ancestry, error) {
	return ancestries.parse(text, lang)
}

func AncestryPattern(lang Language) string { return ancestries.pattern[lang] }

func AllAncestries() []Ancestry { return ancestries.members() }
