package vocab

// MagicItemKind is the category of a magic item
type MagicItemKind int

const (
	ItemKindArmor MagicItemKind = iota
	ItemKindPotion
	ItemKindRing
	ItemKindRod
	ItemKindStaff
	ItemKindWand
	ItemKindWeapon
	ItemKindWondrousItem
	numMagicItemKinds
)

var magicItemKindTable = [...]entry{
	ItemKindArmor:        {id: "armor", fr: "armure", en: "armor", icon: "lamellar", aliases: []string{"armour"}},
	ItemKindPotion:       {id: "potion", fr: "potion", en: "potion", icon: "potion-ball"},
	ItemKindRing:         {id: "ring", fr: "anneau", en: "ring", icon: "ring"},
	ItemKindRod:          {id: "rod", fr: "sceptre", en: "rod", icon: "flanged-mace"},
	ItemKindStaff:        {id: "staff", fr: "bâton", en: "staff", icon: "bo"},
	ItemKindWand:         {id: "wand", fr: "baguette", en: "wand", icon: "lunar-wand"},
	ItemKindWeapon:       {id: "weapon", fr: "arme", en: "weapon", icon: "shard-sword"},
	ItemKindWondrousItem: {id: "wondrous_item", fr: "objet merveilleux", en: "wondrous item", icon: "eclipse-flare"},
}

var _ = [1]struct{}{}[len(magicItemKindTable)-int(numMagicItemKinds)]

var magicItemKinds = newVocabulary[MagicItemKind]("magic item kind", magicItemKindTable[:])

func (k MagicItemKind) Translate(lang Language) string { return magicItemKinds.translate(k, lang) }

// ID is the language independent name of the kind
func (k MagicItemKind) ID() string { return magicItemKinds.entry(k).id }

// Icon names the card icon of the kind
func (k MagicItemKind) Icon() string   { return magicItemKinds.entry(k).icon }
func (k MagicItemKind) String() string { return k.ID() }

// ParseMagicItemKind looks up an item kind by its display name in lang
func ParseMagicItemKind(text string, lang Language) (MagicItemKind, error) {
	return magicItemKinds.parse(text, lang)
}

// MagicItemKindPattern returns a regexp alternation of every kind name in lang
func MagicItemKindPattern(lang Language) string { return magicItemKinds.pattern[lang] }

// AllMagicItemKinds returns every kind in declaration order
func AllMagicItemKinds() []MagicItemKind { return magicItemKinds.members() }

// MagicItemRarity is an ordered rarity; its value is its rank
type MagicItemRarity int

const (
	RarityCommon MagicItemRarity = iota
	RarityUncommon
	RarityRare
	RarityVeryRare
	RarityLegendary
	RarityArtifact
	numMagicItemRarities
)

var magicItemRarityTable = [...]entry{
	RarityCommon:    {id: "common", fr: "commun", en: "common", aliases: []string{"commune"}},
	RarityUncommon:  {id: "uncommon", fr: "peu commun", en: "uncommon", aliases: []string{"peu commune"}},
	RarityRare:      {id: "rare", fr: "rare", en: "rare"},
	RarityVeryRare:  {id: "very_rare", fr: "très rare", en: "very rare"},
	RarityLegendary: {id: "legendary", fr: "légendaire", en: "legendary"},
	RarityArtifact:  {id: "artifact", fr: "artéfact", en: "artifact", aliases: []string{"artefact"}},
}

var _ = [1]struct{}{}[len(magicItemRarityTable)-int(numMagicItemRarities)]

var rarityColors = [...]string{
	RarityCommon:    "#5C4B51",
	RarityUncommon:  "#8CBEB2",
	RarityRare:      "#BDD684",
	RarityVeryRare:  "#F3B562",
	RarityLegendary: "#F06060",
	RarityArtifact:  "#9575CD",
}

var _ = [1]struct{}{}[len(rarityColors)-int(numMagicItemRarities)]

var magicItemRarities = newVocabulary[MagicItemRarity]("magic item rarity", magicItemRarityTable[:])

func (r MagicItemRarity) Translate(lang Language) string { return magicItemRarities.translate(r, lang) }

// ID is the language independent name of the rarity
func (r MagicItemRarity) ID() string     { return magicItemRarities.entry(r).id }
func (r MagicItemRarity) String() string { return r.ID() }

// Rank orders rarities from common (0) to artifact (5)
func (r MagicItemRarity) Rank() int { return int(r) }

// Color is the card color of items of this rarity
func (r MagicItemRarity) Color() string {
	if r < 0 || r >= numMagicItemRarities {
		return rarityColors[RarityCommon]
	}
	return rarityColors[r]
}

// ParseMagicItemRarity looks up a rarity by its display name in lang
func ParseMagicItemRarity(text string, lang Language) (MagicItemRarity, error) {
	return magicItemRarities.parse(text, lang)
}

// MagicItemRarityPattern returns a regexp alternation of every rarity name
// in lang
func MagicItemRarityPattern(lang Language) string { return magicItemRarities.pattern[lang] }

// AllMagicItemRarities returns every rarity, lowest rank first
func AllMagicItemRarities() []MagicItemRarity { return magicItemRarities.members() }
