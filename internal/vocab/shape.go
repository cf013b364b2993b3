package vocab

import "strings"

// SpellShape is the area an effect covers
type SpellShape int

const (
	ShapeCircle SpellShape = iota
	ShapeCone
	ShapeCube
	ShapeCylinder
	ShapeHemisphere
	ShapeLine
	ShapeRadius
	ShapeSphere
	ShapeSquare
	ShapeWall
	numSpellShapes
)

var spellShapeTable = [...]entry{
	ShapeCircle:     {id: "circle", fr: "cercle", en: "circle", icon: "circle"},
	ShapeCone:       {id: "cone", fr: "cône", en: "cone", icon: "ringed-beam"},
	ShapeCube:       {id: "cube", fr: "cube", en: "cube", icon: "cube"},
	ShapeCylinder:   {id: "cylinder", fr: "cylindre", en: "cylinder", icon: "database"},
	ShapeHemisphere: {id: "hemisphere", fr: "hémisphère", en: "hemisphere", icon: "onigori"},
	ShapeLine:       {id: "line", fr: "ligne", en: "line", icon: "straight-pipe"},
	ShapeRadius:     {id: "radius", fr: "rayon", en: "radius", icon: "circle"},
	ShapeSphere:     {id: "sphere", fr: "sphère", en: "sphere", icon: "glass-ball"},
	ShapeSquare:     {id: "square", fr: "carré", en: "square", icon: "square"},
	ShapeWall:       {id: "wall", fr: "mur", en: "wall", icon: "brick-wall"},
}

var _ = [1]struct{}{}[len(spellShapeTable)-int(numSpellShapes)]

var spellShapes = newVocabulary[SpellShape]("spell shape", spellShapeTable[:])

// area tags used by the spell metadata table
var shapeTags = map[string]SpellShape{
	"C": ShapeCube,
	"H": ShapeHemisphere,
	"L": ShapeLine,
	"N": ShapeCone,
	"Q": ShapeSquare,
	"R": ShapeCircle,
	"S": ShapeSphere,
	"W": ShapeWall,
	"Y": ShapeCylinder,
}

func (s SpellShape) Translate(lang Language) string { return spellShapes.translate(s, lang) }

// ID is the language independent name of the shape
func (s SpellShape) ID() string { return spellShapes.entry(s).id }

// Icon names the card icon of the shape
func (s SpellShape) Icon() string   { return spellShapes.entry(s).icon }
func (s SpellShape) String() string { return s.ID() }

// ParseSpellShape looks up a shape by its display name in lang
func ParseSpellShape(text string, lang Language) (SpellShape, error) {
	return spellShapes.parse(text, lang)
}

// SpellShapePattern returns a regexp alternation of every shape name in lang
func SpellShapePattern(lang Language) string { return spellShapes.pattern[lang] }

// AllSpellShapes returns every shape in declaration order
func AllSpellShapes() []SpellShape { return spellShapes.members() }

// IsTargetTag reports the single target (ST) and multiple target (MT) tags,
// which describe targeting rather than an area.
func IsTargetTag(tag string) bool {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "ST", "MT":
		return true
	}
	return false
}

// ShapeFromTags returns the shape of the first area tag, skipping target tags
// and tags with no known shape.
func ShapeFromTags(tags []string) (SpellShape, bool) {
	for _, tag := range tags {
		if IsTargetTag(tag) {
			continue
		}
		if shape, ok := shapeTags[strings.ToUpper(strings.TrimSpace(tag))]; ok {
			return shape, true
		}
	}
	return 0, false
}

// ShapeTag returns the area tag of a shape, or "" for shapes with no tag
func ShapeTag(shape SpellShape) string {
	for tag, s := range shapeTags {
		if s == shape {
			return tag
		}
	}
	return ""
}
