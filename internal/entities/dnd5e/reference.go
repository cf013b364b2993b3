package dnd5e

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

var slugPattern = regexp.MustCompile(`^[^\s:/?#&]+$`)

// Reference identifies one page of the rules site: a slug in a language
type Reference struct {
	Language vocab.Language
	Slug     string
}

// String renders the reference as lang:slug, which is also its cache key
func (r Reference) String() string {
	return string(r.Language) + ":" + r.Slug
}

// NewReference validates a language and slug pair
func NewReference(lang, slug string) (Reference, error) {
	vb := errors.NewValidationBuilder()

	language, err := vocab.ParseLanguage(lang)
	if err != nil {
		vb.Fieldf("language", "must be fr or en, got %q", lang)
	}
	slug = strings.TrimSpace(slug)
	switch {
	case slug == "":
		vb.RequiredField("slug")
	case !slugPattern.MatchString(slug):
		vb.Fieldf("slug", "%q is not a page slug", slug)
	}

	if err := vb.Build(); err != nil {
		return Reference{}, err
	}
	return Reference{Language: language, Slug: slug}, nil
}

// ParseReference parses a lang:slug token such as "fr:boule-de-feu"
func ParseReference(token string) (Reference, error) {
	lang, slug, ok := strings.Cut(strings.TrimSpace(token), ":")
	if !ok {
		return Reference{}, malformed(token, "lang:slug")
	}
	return NewReference(lang, slug)
}

// ClassFeatureReference names one feature on a class rules page
type ClassFeatureReference struct {
	Language vocab.Language
	Class    vocab.CharacterClass
	Title    string
}

func (r ClassFeatureReference) String() string {
	return string(r.Language) + ":" + r.Class.Translate(r.Language) + ":" + r.Title
}

// Page is the class rules page holding the feature
func (r ClassFeatureReference) Page() Reference {
	return Reference{Language: r.Language, Slug: pageSlug(r.Class.Translate(r.Language))}
}

// ParseClassFeatureReference parses lang:class:Feature title, the class
// being named in the reference language ("fr:clerc:Conduit divin").
func ParseClassFeatureReference(token string) (ClassFeatureReference, error) {
	parts := strings.SplitN(strings.TrimSpace(token), ":", 3)
	if len(parts) != 3 || strings.TrimSpace(parts[2]) == "" {
		return ClassFeatureReference{}, malformed(token, "lang:class:feature")
	}
	lang, err := vocab.ParseLanguage(parts[0])
	if err != nil {
		return ClassFeatureReference{}, err
	}
	class, err := vocab.ParseCharacterClass(parts[1], lang)
	if err != nil {
		return ClassFeatureReference{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"unknown class in %q", token)
	}
	return ClassFeatureReference{Language: lang, Class: class, Title: strings.TrimSpace(parts[2])}, nil
}

// AncestryFeatureReference names the traits block of an ancestry, or of one
// of its sub-ancestries when SubAncestry is set
type AncestryFeatureReference struct {
	Language    vocab.Language
	Ancestry    vocab.Ancestry
	SubAncestry string
}

func (r AncestryFeatureReference) String() string {
	s := string(r.Language) + ":" + r.Ancestry.Translate(r.Language)
	if r.SubAncestry != "" {
		s += ":" + r.SubAncestry
	}
	return s
}

// Page is the ancestry rules page
func (r AncestryFeatureReference) Page() Reference {
	return Reference{Language: r.Language, Slug: pageSlug(r.Ancestry.Translate(r.Language))}
}

// ParseAncestryFeatureReference parses lang:ancestry[:sub-ancestry]
func ParseAncestryFeatureReference(token string) (AncestryFeatureReference, error) {
	parts := strings.SplitN(strings.TrimSpace(token), ":", 3)
	if len(parts) < 2 {
		return AncestryFeatureReference{}, malformed(token, "lang:ancestry[:sub-ancestry]")
	}
	lang, err := vocab.ParseLanguage(parts[0])
	if err != nil {
		return AncestryFeatureReference{}, err
	}
	ancestry, err := vocab.ParseAncestry(parts[1], lang)
	if err != nil {
		return AncestryFeatureReference{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"unknown ancestry in %q", token)
	}
	ref := AncestryFeatureReference{Language: lang, Ancestry: ancestry}
	if len(parts) == 3 {
		ref.SubAncestry = strings.TrimSpace(parts[2])
	}
	return ref, nil
}

func malformed(token, shape string) error {
	return errors.NewValidationBuilder().
		InvalidField("reference", "expected "+shape+", got \""+token+"\"").
		Build()
}

var accentFolding = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a", "é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i", "ô", "o", "ö", "o", "ù", "u", "û", "u", "ü", "u", "ç", "c",
	" ", "-", "'", "-", "’", "-",
)

// pageSlug turns a display name into the slug the rules site uses for it
func pageSlug(name string) string {
	return accentFolding.Replace(strings.ToLower(strings.TrimSpace(name)))
}
