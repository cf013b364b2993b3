package aidedd

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// spell search results always link to French pages
const defaultFilterLanguage = vocab.French

// classFilterLetters is the search form value of each spellcasting class
var classFilterLetters = map[vocab.CharacterClass]string{
	vocab.ClassArtificer: "a",
	vocab.ClassBard:      "b",
	vocab.ClassCleric:    "c",
	vocab.ClassDruid:     "d",
	vocab.ClassSorcerer:  "s",
	vocab.ClassWizard:    "w",
	vocab.ClassWarlock:   "k",
	vocab.ClassPaladin:   "p",
	vocab.ClassRanger:    "r",
}

// SpellFilter selects the spells of a class between two levels, inclusive
type SpellFilter struct {
	Class    vocab.CharacterClass
	MinLevel int
	MaxLevel int
}

// String renders the filter as class:min:max with the English class name
func (f SpellFilter) String() string {
	return f.Class.ID() + ":" + strconv.Itoa(f.MinLevel) + ":" + strconv.Itoa(f.MaxLevel)
}

// ParseSpellFilter parses a class:min:max token such as "wizard:0:2". The
// class may be named in either language.
func ParseSpellFilter(token string) (SpellFilter, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) != 3 {
		return SpellFilter{}, errors.InvalidArgumentf("malformed spell filter %q, expected class:min:max", token).
			WithMeta("token", token)
	}

	vb := errors.NewValidationBuilder()
	class, err := parseClassAnyLanguage(parts[0])
	if err != nil {
		vb.Fieldf("class", "unknown class %q", parts[0])
	} else if _, ok := classFilterLetters[class]; !ok {
		vb.Fieldf("class", "%s has no spell list", class)
	}
	minLevel, err := strconv.Atoi(parts[1])
	if err != nil {
		vb.Fieldf("min_level", "%q is not a number", parts[1])
	}
	maxLevel, err := strconv.Atoi(parts[2])
	if err != nil {
		vb.Fieldf("max_level", "%q is not a number", parts[2])
	}
	if err := vb.Build(); err != nil {
		return SpellFilter{}, err
	}

	errors.ValidateRange("min_level", minLevel, 0, 9, vb)
	errors.ValidateRange("max_level", maxLevel, 0, 9, vb)
	if minLevel > maxLevel {
		vb.Fieldf("min_level", "%d is above max_level %d", minLevel, maxLevel)
	}
	if err := vb.Build(); err != nil {
		return SpellFilter{}, err
	}

	return SpellFilter{Class: class, MinLevel: minLevel, MaxLevel: maxLevel}, nil
}

func parseClassAnyLanguage(name string) (vocab.CharacterClass, error) {
	var lastErr error
	for _, lang := range vocab.Languages {
		class, err := vocab.ParseCharacterClass(name, lang)
		if err == nil {
			return class, nil
		}
		lastErr = err
	}
	return 0, lastErr
}

// parseSpellFilterResults reads the result table of the spell search. Each
// row links to a French spell page through its vf parameter.
func parseSpellFilterResults(body string) ([]dnd5e.Reference, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse spell filter results")
	}

	var refs []dnd5e.Reference
	seen := make(map[string]bool)
	doc.Find("table td.item a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		slug := u.Query().Get(defaultFilterLanguage.QueryParam())
		if slug == "" || seen[slug] {
			return
		}
		seen[slug] = true
		refs = append(refs, dnd5e.Reference{Language: defaultFilterLanguage, Slug: slug})
	})
	return refs, nil
}
