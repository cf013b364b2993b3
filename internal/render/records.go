package render

import (
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/formatter"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

const rechargeBoxSize = "1.5"

// MagicItem renders a magic item card, colored by rarity
func (r *Renderer) MagicItem(item *dnd5e.MagicItem) (*Card, error) {
	if item == nil {
		return nil, errors.InvalidArgument("magic item is required")
	}
	parts, err := r.format(item.Language, item.Paragraphs)
	if err != nil {
		return nil, err
	}

	subtitle := capitalize(item.Kind.Translate(item.Language)) + ", " + item.Rarity.Translate(item.Language)
	if item.RequiresAttunement {
		subtitle += " " + iconMarkup(IconAttunement)
	}

	tokens := []Token{
		Title(item.Title, item.Kind.Icon()),
		Subtitle(subtitle),
		HeaderSeparator(),
	}
	tokens = append(tokens, textTokens(parts)...)
	if item.RechargeCount > 0 {
		tokens = append(tokens, Fill(), Boxes(item.RechargeCount, rechargeBoxSize), Text(""))
	}

	card := newCard(item.Title, item.Rarity.Color(), item.Kind.Icon(), tokens)
	card.BackgroundImage = item.ImageURL
	card.Tags = []string{"magic-item", item.Kind.ID(), item.Rarity.ID()}
	return card, nil
}

// Feat renders a feat card
func (r *Renderer) Feat(feat *dnd5e.Feat) (*Card, error) {
	if feat == nil {
		return nil, errors.InvalidArgument("feat is required")
	}
	return r.prerequisiteCard(prerequisiteRecord{
		lang:         feat.Language,
		title:        feat.Title,
		prerequisite: feat.Prerequisite,
		paragraphs:   feat.Paragraphs,
		cardType:     "feat",
		icon:         IconFeat,
		color:        ColorFeat,
	})
}

// EldritchInvocation renders an invocation card. It is a feat card with its
// own color and icon.
func (r *Renderer) EldritchInvocation(invocation *dnd5e.EldritchInvocation) (*Card, error) {
	if invocation == nil {
		return nil, errors.InvalidArgument("eldritch invocation is required")
	}
	return r.prerequisiteCard(prerequisiteRecord{
		lang:         invocation.Language,
		title:        invocation.Title,
		prerequisite: invocation.Prerequisite,
		paragraphs:   invocation.Paragraphs,
		cardType:     "eldritch-invocation",
		icon:         IconEldritchInvocation,
		color:        ColorEldritchInvocation,
	})
}

type prerequisiteRecord struct {
	lang         vocab.Language
	title        string
	prerequisite string
	paragraphs   []string
	cardType     string
	icon         string
	color        string
}

func (r *Renderer) prerequisiteCard(rec prerequisiteRecord) (*Card, error) {
	parts, err := r.format(rec.lang, rec.paragraphs)
	if err != nil {
		return nil, err
	}

	tokens := []Token{
		Title(rec.title, rec.icon),
		CardType(rec.cardType),
		HeaderSeparator(),
	}
	if rec.prerequisite != "" {
		tokens = append(tokens, Text(formatter.Strong(rec.prerequisite)))
	}
	tokens = append(tokens, textTokens(parts)...)

	card := newCard(rec.title, rec.color, rec.icon, tokens)
	card.Tags = []string{rec.cardType}
	return card, nil
}

// ClassFeature renders a class feature card. The subtitle names the class
// and, for subclass features, the subclass.
func (r *Renderer) ClassFeature(feature *dnd5e.ClassFeature) (*Card, error) {
	if feature == nil {
		return nil, errors.InvalidArgument("class feature is required")
	}
	parts, err := r.format(feature.Language, feature.Paragraphs)
	if err != nil {
		return nil, err
	}

	subtitle := capitalize(feature.Class.Translate(feature.Language))
	if feature.ClassVariant != "" {
		subtitle += " - " + feature.ClassVariant
	}

	tokens := []Token{
		Title(feature.Title, feature.Class.Icon()),
		Subtitle(subtitle),
		CardType("class-feature"),
		HeaderSeparator(),
	}
	tokens = append(tokens, textTokens(parts)...)

	card := newCard(feature.Title, ColorClassFeature, feature.Class.Icon(), tokens)
	card.Tags = []string{"class-feature", feature.Class.ID()}
	return card, nil
}

// AncestryFeature renders the traits of an ancestry. A sub-ancestry card is
// titled with the sub-ancestry name.
func (r *Renderer) AncestryFeature(feature *dnd5e.AncestryFeature) (*Card, error) {
	if feature == nil {
		return nil, errors.InvalidArgument("ancestry feature is required")
	}
	parts, err := r.format(feature.Language, feature.Paragraphs)
	if err != nil {
		return nil, err
	}

	title := feature.Title
	if feature.SubAncestry != "" {
		title = feature.SubAncestry
	}

	tokens := []Token{
		Title(title, IconAncestryFeature),
		CardType("ancestry"),
		HeaderSeparator(),
	}
	tokens = append(tokens, textTokens(parts)...)

	card := newCard(title, ColorAncestryFeature, IconAncestryFeature, tokens)
	card.Tags = []string{"ancestry", feature.Ancestry.ID()}
	return card, nil
}

// Background renders the feature of a background
func (r *Renderer) Background(background *dnd5e.Background) (*Card, error) {
	if background == nil {
		return nil, errors.InvalidArgument("background is required")
	}
	parts, err := r.format(background.Language, background.Paragraphs)
	if err != nil {
		return nil, err
	}

	tokens := []Token{Title(background.Title, IconBackground)}
	if subtitle := strings.TrimSpace(background.Subtitle); subtitle != "" {
		tokens = append(tokens, Subtitle(subtitle))
	}
	tokens = append(tokens, CardType("background"), HeaderSeparator())
	tokens = append(tokens, textTokens(parts)...)

	card := newCard(background.Title, ColorBackground, IconBackground, tokens)
	card.Tags = []string{"background"}
	return card, nil
}
