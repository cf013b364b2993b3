package vocab

// MagicSchool is a school of magic
type MagicSchool int

const (
	SchoolAbjuration MagicSchool = iota
	SchoolConjuration
	SchoolDivination
	SchoolEnchantment
	SchoolEvocation
	SchoolIllusion
	SchoolNecromancy
	SchoolTransmutation
	numMagicSchools
)

var magicSchoolTable = [...]entry{
	SchoolAbjuration:    {id: "abjuration", fr: "abjuration", en: "abjuration"},
	SchoolConjuration:   {id: "conjuration", fr: "invocation", en: "conjuration"},
	SchoolDivination:    {id: "divination", fr: "divination", en: "divination"},
	SchoolEnchantment:   {id: "enchantment", fr: "enchantement", en: "enchantment"},
	SchoolEvocation:     {id: "evocation", fr: "évocation", en: "evocation"},
	SchoolIllusion:      {id: "illusion", fr: "illusion", en: "illusion"},
	SchoolNecromancy:    {id: "necromancy", fr: "nécromancie", en: "necromancy"},
	SchoolTransmutation: {id: "transmutation", fr: "transmutation", en: "transmutation"},
}

var _ = [1]struct{}{}[len(magicSchoolTable)-int(numMagicSchools)]

var magicSchools = newVocabulary[MagicSchool]("magic school", magicSchoolTable[:])

// Translate returns the display name in lang
func (s MagicSchool) Translate(lang Language) string { return magicSchools.translate(s, lang) }

// ID returns the language neutral identifier
func (s MagicSchool) ID() string { return magicSchools.entry(s).id }

func (s MagicSchool) String() string { return s.ID() }

// ParseMagicSchool looks up a school by its display name in lang
func ParseMagicSchool(text string, lang Language) (MagicSchool, error) {
	return magicSchools.parse(text, lang)
}

// MagicSchoolPattern returns a regexp alternation of every school name in lang
func MagicSchoolPattern(lang Language) string { return magicSchools.pattern[lang] }

// AllMagicSchools lists every school
func AllMagicSchools() []MagicSchool { return magicSchools.members() }
