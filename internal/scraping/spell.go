package scraping

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	spellmetadata "github.com/KirkDiggler/rpg-cards/internal/repositories/spell_metadata"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// Spell page selectors
const (
	selContent      = "div.content"
	selTitle        = "h1"
	selTranslation  = "div.trad a"
	selSchool       = "div.ecole"
	selCastingTime  = "div.t"
	selRange        = "div.r"
	selComponents   = "div.c"
	selDuration     = "div.d"
	selDescription  = "div.description"
	selClassTags    = "div.classe"
	levelSchoolSep  = " - "
	componentsSplit = ", "
)

var (
	castingTimeLabels = map[vocab.Language]string{vocab.French: "Temps d'incantation :", vocab.English: "Casting Time:"}
	rangeLabels       = map[vocab.Language]string{vocab.French: "Portée :", vocab.English: "Range:"}
	componentLabels   = map[vocab.Language]string{vocab.French: "Composantes :", vocab.English: "Components:"}
	durationLabels    = map[vocab.Language]string{vocab.French: "Durée :", vocab.English: "Duration:"}

	upcastingMarkers = map[vocab.Language]string{vocab.French: "Aux niveaux supérieurs", vocab.English: "At Higher Levels"}
	payingMarkers    = map[vocab.Language]string{vocab.French: "valant au moins", vocab.English: "worth at least"}
	cantripWords     = []string{"tour de magie", "cantrip"}
	levelWords       = strings.NewReplacer("niveau", "", "level", "")
)

var (
	ritualPattern        = regexp.MustCompile(`\((ritual|rituel)\)`)
	concentrationPattern = regexp.MustCompile(`(?i)concentration, `)
	reactionPattern      = regexp.MustCompile(`^\d r[ée]action`)
	parenthetical        = regexp.MustCompile(`\(.+\)`)
	parentheticalContent = regexp.MustCompile(`\((.+)\)`)
	leadingSubClause     = regexp.MustCompile(`^\. `)

	spellDamagePatterns = map[vocab.Language]*regexp.Regexp{
		vocab.French:  regexp.MustCompile(`dégâts (?:de |d'|d’)?(?:type )?([^.\sà,]+)`),
		vocab.English: regexp.MustCompile(`(\p{L}+) damage`),
	}
)

func (s *scraper) ScrapeSpell(ctx context.Context, ref dnd5e.Reference) (*dnd5e.Spell, error) {
	slog.Info("Scraping spell", "lang", ref.Language, "slug", ref.Slug)

	page, err := s.fetch(ctx, aidedd.ResourceSpell, ref)
	if err != nil {
		return nil, failed(err, "spell", ref, ref.Language)
	}

	spell, err := s.parseSpell(page, ref)
	if err != nil {
		return nil, failed(err, "spell", ref, ref.Language)
	}

	s.applySpellMetadata(ctx, spell)
	return spell, nil
}

func (s *scraper) parseSpell(page *dom.Page, ref dnd5e.Reference) (*dnd5e.Spell, error) {
	lang := ref.Language

	content, err := page.FindRequired(nil, selContent)
	if err != nil {
		return nil, err
	}

	spell := &dnd5e.Spell{Reference: ref, Language: lang}

	if spell.Title, err = page.RequiredText(content, selTitle); err != nil {
		return nil, err
	}
	if spell.CanonicalTitle, err = canonicalTitle(page, content, spell.Title, lang); err != nil {
		return nil, err
	}

	if err := parseLevelAndSchool(page, content, spell); err != nil {
		return nil, err
	}

	if err := parseSpellProperties(page, content, spell); err != nil {
		return nil, err
	}

	description, err := page.FindRequired(content, selDescription)
	if err != nil {
		return nil, err
	}
	parts, err := s.inline.Sanitize(description)
	if err != nil {
		return nil, err
	}
	spell.Paragraphs, spell.UpcastingText = splitUpcasting(parts, upcastingMarkers[lang])

	content.Find(selClassTags).Each(func(_ int, tag *goquery.Selection) {
		if text := dom.CleanText(tag.Text()); text != "" {
			spell.ClassTags = append(spell.ClassTags, text)
		}
	})

	spell.DamageType = findDamageType(spell.Paragraphs, lang)

	return spell, nil
}

// canonicalTitle is the English title, read from the translation link on
// French pages
func canonicalTitle(page *dom.Page, content *goquery.Selection, title string, lang vocab.Language) (string, error) {
	if lang == vocab.English {
		return title, nil
	}
	text, err := page.RequiredText(content, selTranslation)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Trim(text, "[]")), nil
}

// parseLevelAndSchool reads "level 3 - evocation" or "niveau 1 - abjuration (rituel)"
func parseLevelAndSchool(page *dom.Page, content *goquery.Selection, spell *dnd5e.Spell) error {
	line, err := page.RequiredText(content, selSchool)
	if err != nil {
		return err
	}

	levelText, schoolText, ok := strings.Cut(line, levelSchoolSep)
	if !ok {
		return errors.ScrapingFailed(page.Slug, selSchool).WithMeta("text", line)
	}

	level, err := parseSpellLevel(levelText)
	if err != nil {
		return errors.ScrapingFailed(page.Slug, selSchool).WithMeta("text", line)
	}
	spell.Level = level

	if loc := ritualPattern.FindStringIndex(schoolText); loc != nil {
		spell.Ritual = true
		schoolText = schoolText[:loc[0]] + schoolText[loc[1]:]
	}

	school, err := vocab.ParseMagicSchool(strings.ToLower(strings.TrimSpace(schoolText)), spell.Language)
	if err != nil {
		return err
	}
	spell.School = school
	return nil
}

func parseSpellLevel(text string) (int, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, word := range cantripWords {
		if text == word {
			return 0, nil
		}
	}
	level, err := strconv.Atoi(strings.TrimSpace(levelWords.Replace(text)))
	if err != nil {
		return 0, err
	}
	if level < 0 || level > 9 {
		return 0, errors.InvalidArgumentf("spell level %d out of range", level)
	}
	return level, nil
}

func parseSpellProperties(page *dom.Page, content *goquery.Selection, spell *dnd5e.Spell) error {
	castingTime, err := page.RequiredText(content, selCastingTime)
	if err != nil {
		return err
	}
	castingRange, err := page.RequiredText(content, selRange)
	if err != nil {
		return err
	}
	components, err := page.RequiredText(content, selComponents)
	if err != nil {
		return err
	}
	duration, err := page.RequiredText(content, selDuration)
	if err != nil {
		return err
	}

	castingTime = capitalize(stripLabels(castingTime, castingTimeLabels))
	if match := reactionPattern.FindString(castingTime); match != "" {
		spell.ReactionCondition = strings.TrimLeft(strings.TrimPrefix(castingTime, match), ", ")
		castingTime = match
	}
	spell.CastingTime = castingTime
	spell.CastingRange = capitalize(stripLabels(castingRange, rangeLabels))

	duration = stripLabels(duration, durationLabels)
	if loc := concentrationPattern.FindStringIndex(duration); loc != nil {
		spell.Concentration = true
		duration = strings.TrimSpace(duration[:loc[0]] + duration[loc[1]:])
	}
	spell.EffectDuration = capitalize(duration)

	parseComponents(stripLabels(components, componentLabels), spell)
	return nil
}

// parseComponents reads "V, S, M (a diamond worth at least 300 gp)"
func parseComponents(text string, spell *dnd5e.Spell) {
	letters := strings.Split(strings.TrimSpace(parenthetical.ReplaceAllString(text, "")), componentsSplit)
	for _, letter := range letters {
		switch strings.TrimSpace(letter) {
		case "V":
			spell.Verbal = true
		case "S":
			spell.Somatic = true
		case "M":
			spell.Material = true
		}
	}
	if !spell.Material {
		return
	}

	match := parentheticalContent.FindStringSubmatch(text)
	if match == nil || !strings.Contains(match[1], payingMarkers[spell.Language]) {
		return
	}
	paying := capitalize(strings.TrimSpace(match[1]))
	if !strings.HasSuffix(paying, ".") {
		paying += "."
	}
	spell.PayingComponentsText = paying
}

// splitUpcasting moves everything after the upcasting marker out of the
// description
func splitUpcasting(parts []string, marker string) ([]string, string) {
	for i, part := range parts {
		if strings.TrimSuffix(dom.StripSentinels(part), ".") != marker {
			continue
		}
		var upcasting []string
		for _, rest := range parts[i+1:] {
			upcasting = append(upcasting, leadingSubClause.ReplaceAllString(rest, ""))
		}
		return parts[:i], strings.Join(upcasting, "\n")
	}
	return parts, ""
}

// findDamageType returns the first damage type named in the description.
// Words that look like a damage type but are not one are skipped.
func findDamageType(paragraphs []string, lang vocab.Language) *vocab.DamageType {
	text := dom.StripSentinels(strings.Join(paragraphs, "\n"))
	for _, match := range spellDamagePatterns[lang].FindAllStringSubmatch(text, -1) {
		word := strings.TrimSuffix(match[1], "s")
		damageType, err := vocab.ParseDamageType(word, lang)
		if err != nil {
			continue
		}
		return &damageType
	}
	return nil
}

func (s *scraper) applySpellMetadata(ctx context.Context, spell *dnd5e.Spell) {
	if s.spellMetadata == nil || spell.CanonicalTitle == "" {
		return
	}

	out, err := s.spellMetadata.Get(ctx, spellmetadata.GetInput{Title: spell.CanonicalTitle})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("spell metadata lookup failed", "title", spell.CanonicalTitle, "error", err)
		}
		return
	}

	if shape, ok := out.Metadata.Shape(); ok {
		spell.Shape = &shape
	}
	spell.SpellType = out.Metadata.SpellType
}
