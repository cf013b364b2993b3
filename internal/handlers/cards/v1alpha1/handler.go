// Package v1alpha1 serves card generation over gRPC
package v1alpha1

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// Request fields
const (
	FieldSpells              = "spells"
	FieldSpellFilters        = "spell_filters"
	FieldMagicItems          = "magic_items"
	FieldFeats               = "feats"
	FieldEldritchInvocations = "eldritch_invocations"
	FieldClassFeatures       = "class_features"
	FieldAncestryFeatures    = "ancestry_features"
	FieldBackgrounds         = "backgrounds"
	FieldLegend              = "legend"
	FieldFailFast            = "fail_fast"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CardService cards.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CardService == nil {
		return errors.InvalidArgument("card service is required")
	}
	return nil
}

// Handler implements the card gRPC service
type Handler struct {
	cardService cards.Service
}

var _ CardServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{cardService: cfg.CardService}, nil
}

// GenerateCards resolves the references of the request and returns the
// cards with the failed references
func (h *Handler) GenerateCards(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := toGenerateInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.cardService.Generate(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := fromGenerateOutput(output)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}
	return resp, nil
}

func toGenerateInput(req *structpb.Struct) (*cards.GenerateInput, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	vb := errors.NewValidationBuilder()
	fields := req.GetFields()
	input := &cards.GenerateInput{}

	input.Spells = parseEach(fields, FieldSpells, vb, dnd5e.ParseReference)
	input.SpellFilters = parseEach(fields, FieldSpellFilters, vb, aidedd.ParseSpellFilter)
	input.MagicItems = parseEach(fields, FieldMagicItems, vb, dnd5e.ParseReference)
	input.Feats = parseEach(fields, FieldFeats, vb, dnd5e.ParseReference)
	input.EldritchInvocations = parseEach(fields, FieldEldritchInvocations, vb, dnd5e.ParseReference)
	input.ClassFeatures = parseEach(fields, FieldClassFeatures, vb, dnd5e.ParseClassFeatureReference)
	input.AncestryFeatures = parseEach(fields, FieldAncestryFeatures, vb, dnd5e.ParseAncestryFeatureReference)
	input.Backgrounds = parseEach(fields, FieldBackgrounds, vb, dnd5e.ParseReference)

	if v, ok := fields[FieldLegend]; ok {
		lang, err := vocab.ParseLanguage(v.GetStringValue())
		if err != nil {
			vb.Fieldf(FieldLegend, "must be fr or en, got %q", v.GetStringValue())
		}
		input.LegendLanguage = lang
	}
	if v, ok := fields[FieldFailFast]; ok {
		if _, isBool := v.GetKind().(*structpb.Value_BoolValue); !isBool {
			vb.Field(FieldFailFast, "must be a boolean")
		}
		input.FailFast = v.GetBoolValue()
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return input, nil
}

// parseEach parses every string of a list field
func parseEach[T any](fields map[string]*structpb.Value, name string, vb *errors.ValidationBuilder, parse func(string) (T, error)) []T {
	v, ok := fields[name]
	if !ok {
		return nil
	}
	list := v.GetListValue()
	if list == nil {
		vb.Field(name, "must be a list of strings")
		return nil
	}

	out := make([]T, 0, len(list.GetValues()))
	for i, item := range list.GetValues() {
		field := fmt.Sprintf("%s[%d]", name, i)
		if _, isString := item.GetKind().(*structpb.Value_StringValue); !isString {
			vb.Field(field, "must be a string")
			continue
		}
		parsed, err := parse(item.GetStringValue())
		if err != nil {
			vb.Field(field, errors.GetMessage(err))
			continue
		}
		out = append(out, parsed)
	}
	return out
}

func fromGenerateOutput(output *cards.GenerateOutput) (*structpb.Struct, error) {
	cardList := make([]any, 0, len(output.Cards))
	for _, card := range output.Cards {
		cardList = append(cardList, cardFields(card))
	}

	failures := make([]any, 0, len(output.Failures))
	for _, f := range output.Failures {
		failures = append(failures, map[string]any{
			"reference": f.Reference,
			"code":      errors.GetCode(f.Err).String(),
			"message":   f.Err.Error(),
		})
	}

	return structpb.NewStruct(map[string]any{
		"run_id":   output.RunID,
		"cards":    cardList,
		"failures": failures,
	})
}

// cardFields mirrors the JSON encoding of a card
func cardFields(card *render.Card) map[string]any {
	fields := map[string]any{
		"count":    card.Count,
		"color":    card.Color,
		"title":    card.Title,
		"icon":     card.Icon,
		"contents": anyList(card.Contents),
	}
	if card.BackgroundImage != "" {
		fields["background_image"] = card.BackgroundImage
	}
	if len(card.Tags) > 0 {
		fields["tags"] = anyList(card.Tags)
	}
	return fields
}

func anyList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
