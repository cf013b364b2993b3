package scraping

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/scraping/dom"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const (
	selItemType = "div.type"
	selImage    = "img"
)

var (
	attunementMarkers = map[vocab.Language]string{
		vocab.French:  "nécessite un lien",
		vocab.English: "requires attunement",
	}
	attunementPatterns = map[vocab.Language]*regexp.Regexp{
		vocab.French:  regexp.MustCompile(`\(` + attunementMarkers[vocab.French] + `[^)]*\)`),
		vocab.English: regexp.MustCompile(`\(` + attunementMarkers[vocab.English] + `[^)]*\)`),
	}

	armorPattern    = regexp.MustCompile(`^(armor|armure)`)
	weaponPattern   = regexp.MustCompile(`^(arme|weapon)`)
	rechargePattern = regexp.MustCompile(`(\d+) charges`)
)

func (s *scraper) ScrapeMagicItem(ctx context.Context, ref dnd5e.Reference) (*dnd5e.MagicItem, error) {
	slog.Info("Scraping magic item", "lang", ref.Language, "slug", ref.Slug)

	page, err := s.fetch(ctx, aidedd.ResourceMagicItem, ref)
	if err != nil {
		return nil, failed(err, "magic item", ref, ref.Language)
	}

	item, err := s.parseMagicItem(page, ref)
	if err != nil {
		return nil, failed(err, "magic item", ref, ref.Language)
	}
	return item, nil
}

func (s *scraper) parseMagicItem(page *dom.Page, ref dnd5e.Reference) (*dnd5e.MagicItem, error) {
	lang := ref.Language

	content, err := page.FindRequired(nil, selContent)
	if err != nil {
		return nil, err
	}

	item := &dnd5e.MagicItem{Reference: ref, Language: lang}
	if item.Title, err = page.RequiredText(content, selTitle); err != nil {
		return nil, err
	}

	typeLine, err := page.RequiredText(content, selItemType)
	if err != nil {
		return nil, err
	}
	typeText, rarityText := splitTypeLine(typeLine)
	item.TypeText = strings.TrimSpace(typeText)

	if item.Kind, err = parseItemKind(item.TypeText, lang); err != nil {
		return nil, err
	}

	rarityText = strings.TrimSpace(rarityText)
	if strings.Contains(rarityText, attunementMarkers[lang]) {
		item.RequiresAttunement = true
		rarityText = strings.TrimSpace(attunementPatterns[lang].ReplaceAllString(rarityText, ""))
	}
	item.RarityText = rarityText
	if item.Rarity, err = vocab.ParseMagicItemRarity(rarityText, lang); err != nil {
		return nil, err
	}

	// the illustration sits outside the content block
	if img := page.FindOptional(nil, selImage); img != nil {
		item.ImageURL, _ = img.Attr("src")
	}

	description, err := page.FindRequired(content, selDescription)
	if err != nil {
		return nil, err
	}
	if item.Paragraphs, err = s.inline.Sanitize(description); err != nil {
		return nil, err
	}

	text := dom.StripSentinels(strings.Join(item.Paragraphs, " "))
	if match := rechargePattern.FindStringSubmatch(text); match != nil {
		item.RechargeCount, _ = strconv.Atoi(match[1])
	}

	return item, nil
}

// parseItemKind folds every armor and weapon subtype into its family
func parseItemKind(typeText string, lang vocab.Language) (vocab.MagicItemKind, error) {
	lower := strings.ToLower(typeText)
	switch {
	case armorPattern.MatchString(lower):
		return vocab.ItemKindArmor, nil
	case weaponPattern.MatchString(lower):
		return vocab.ItemKindWeapon, nil
	}
	return vocab.ParseMagicItemKind(lower, lang)
}

// splitTypeLine cuts "Armor (medium or heavy, but not hide), rare" at the
// first comma outside parentheses
func splitTypeLine(line string) (typeText, rarityText string) {
	depth := 0
	for i, r := range line {
		switch r {
		case '(':
			depth++
		case ')':
			depth = max(depth-1, 0)
		case ',':
			if depth == 0 {
				return line[:i], line[i+1:]
			}
		}
	}
	return line, ""
}
