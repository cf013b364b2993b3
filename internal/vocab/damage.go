package vocab

// DamageType is a type of damage
type DamageType int

const (
	DamageAcid DamageType = iota
	DamageBludgeoning
	DamageCold
	DamageFire
	DamageForce
	DamageLightning
	DamageNecrotic
	DamagePiercing
	DamagePoison
	DamagePsychic
	DamageRadiant
	DamageSlashing
	DamageThunder
	numDamageTypes
)

var damageTypeTable = [...]entry{
	DamageAcid:        {id: "acid", fr: "acide", en: "acid", icon: "acid"},
	DamageBludgeoning: {id: "bludgeoning", fr: "contondant", en: "bludgeoning", icon: "hammer-drop"},
	DamageCold:        {id: "cold", fr: "froid", en: "cold", icon: "ice-spear"},
	DamageFire:        {id: "fire", fr: "feu", en: "fire", icon: "celebration-fire"},
	DamageForce:       {id: "force", fr: "force", en: "force", icon: "mighty-force"},
	DamageLightning:   {id: "lightning", fr: "foudre", en: "lightning", icon: "lightning-tree"},
	DamageNecrotic:    {id: "necrotic", fr: "nécrotique", en: "necrotic", icon: "burning-skull"},
	DamagePiercing:    {id: "piercing", fr: "perforant", en: "piercing", icon: "arrowhead"},
	DamagePoison:      {id: "poison", fr: "poison", en: "poison", icon: "poison-bottle"},
	DamagePsychic:     {id: "psychic", fr: "psychique", en: "psychic", icon: "psychic-waves"},
	DamageRadiant:     {id: "radiant", fr: "radiant", en: "radiant", icon: "sun"},
	DamageSlashing:    {id: "slashing", fr: "tranchant", en: "slashing", icon: "axe-sword"},
	DamageThunder:     {id: "thunder", fr: "tonnerre", en: "thunder", icon: "crowned-explosion"},
}

var _ = [1]struct{}{}[len(damageTypeTable)-int(numDamageTypes)]

var damageTypes = newVocabulary[DamageType]("damage type", damageTypeTable[:])

// Translate is the display name of the damage type in lang
func (d DamageType) Translate(lang Language) string { return damageTypes.translate(d, lang) }

// ID is the language independent name used in card JSON
func (d DamageType) ID() string { return damageTypes.entry(d).id }

// Icon names the glyph drawn next to damage of this type
func (d DamageType) Icon() string   { return damageTypes.entry(d).icon }
func (d DamageType) String() string { return d.ID() }

// ParseDamageType looks up a damage type by its display name in lang
func ParseDamageType(text string, lang Language) (DamageType, error) {
	return damageTypes.parse(text, lang)
}

// DamageTypePattern returns a regexp alternation of every damage type name
// in lang, longest first
func DamageTypePattern(lang Language) string { return damageTypes.pattern[lang] }

// AllDamageTypes returns every damage type in declaration order
func AllDamageTypes() []DamageType { return damageTypes.members() }
