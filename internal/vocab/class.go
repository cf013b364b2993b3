package vocab

import "strings"

// CharacterClass is a playable class
type CharacterClass int

const (
	ClassArtificer CharacterClass = iota
	ClassBarbarian
	ClassBard
	ClassCleric
	ClassDruid
	ClassFighter
	ClassMonk
	ClassPaladin
	ClassRanger
	ClassRogue
	ClassSorcerer
	ClassWarlock
	ClassWizard
	numCharacterClasses
)

var characterClassTable = [...]entry{
	ClassArtificer: {id: "artificer", fr: "artificier", en: "artificer", icon: "fire-tail"},
	ClassBarbarian: {id: "barbarian", fr: "barbare", en: "barbarian", icon: "sharp-axe"},
	ClassBard:      {id: "bard", fr: "barde", en: "bard", icon: "harp"},
	ClassCleric:    {id: "cleric", fr: "clerc", en: "cleric", icon: "thor-hammer"},
	ClassDruid:     {id: "druid", fr: "druide", en: "druid", icon: "sickle"},
	ClassFighter:   {id: "fighter", fr: "guerrier", en: "fighter", icon: "axe-sword", aliases: []string{"warrior"}},
	ClassMonk:      {id: "monk", fr: "moine", en: "monk", icon: "fist"},
	ClassPaladin:   {id: "paladin", fr: "paladin", en: "paladin", icon: "knight-banner"},
	ClassRanger:    {id: "ranger", fr: "rôdeur", en: "ranger", icon: "high-shot", aliases: []string{"rodeur"}},
	ClassRogue:     {id: "rogue", fr: "roublard", en: "rogue", icon: "knife-thrust"},
	ClassSorcerer:  {id: "sorcerer", fr: "ensorceleur", en: "sorcerer", icon: "dragon-breath"},
	ClassWarlock:   {id: "warlock", fr: "occultiste", en: "warlock", icon: "warlock-eye"},
	ClassWizard:    {id: "wizard", fr: "magicien", en: "wizard", icon: "robe"},
}

var _ = [1]struct{}{}[len(characterClassTable)-int(numCharacterClasses)]

// subclassMarkers start the heading that introduces a subclass feature block
var subclassMarkers = [...]struct{ fr, en string }{
	ClassArtificer: {"Spécialisation", "Specialist"},
	ClassBarbarian: {"Voie", "Path"},
	ClassBard:      {"Collège", "College"},
	ClassCleric:    {"Domaine", "Domain"},
	ClassDruid:     {"Cercle", "Circle"},
	ClassFighter:   {"Archétype", "Archetype"},
	ClassMonk:      {"Tradition", "Tradition"},
	ClassPaladin:   {"Serment", "Oath"},
	ClassRanger:    {"Archétype", "Archetype"},
	ClassRogue:     {"Archétype", "Archetype"},
	ClassSorcerer:  {"Origine", "Origin"},
	ClassWarlock:   {"Protecteur", "Patron"},
	ClassWizard:    {"Tradition", "Tradition"},
}

var _ = [1]struct{}{}[len(subclassMarkers)-int(numCharacterClasses)]

var characterClasses = newVocabulary[CharacterClass]("character class", characterClassTable[:])

func (c CharacterClass) Translate(lang Language) string { return characterClasses.translate(c, lang) }
func (c CharacterClass) ID() string                     { return characterClasses.entry(c).id }
func (c CharacterClass) Icon() string                   { return characterClasses.entry(c).icon }
func (c CharacterClass) String() string                 { return c.ID() }

// SubclassMarker is the word opening a subclass heading in lang, e.g. "Domain"
func (c CharacterClass) SubclassMarker(lang Language) string {
	if c < 0 || c >= numCharacterClasses {
		return ""
	}
	if lang == French {
		return subclassMarkers[c].fr
	}
	return subclassMarkers[c].en
}

// StartsWithSubclassMarker reports whether a heading opens with the subclass marker
func (c CharacterClass) StartsWithSubclassMarker(heading string, lang Language) bool {
	marker := c.SubclassMarker(lang)
	if marker == "" {
		return false
	}
	return strings.HasPrefix(normalize(heading), normalize(marker))
}

// ParseCharacterClass looks up a class by its display name in lang
func ParseCharacterClass(text string, lang Language) (CharacterClass, error) {
	return characterClasses.parse(text, lang)
}

func CharacterClassPattern(lang Language) string { return characterClasses.pattern[lang] }

func AllCharacterClasses() []CharacterClass { return characterClasses.members() }
