package spellmetadata

import (
	"context"

	"github.com/KirkDiggler/rpg-cards/internal/clients/external"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

// apiAreaTags maps the dnd5e API area names onto table tags
var apiAreaTags = map[string]string{
	"sphere":   "S",
	"cone":     "N",
	"cube":     "C",
	"cylinder": "Y",
	"line":     "L",
}

type apiRepository struct {
	client external.Client
}

// NewAPIRepository derives spell metadata from the dnd5e API
func NewAPIRepository(client external.Client) (Repository, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	return &apiRepository{client: client}, nil
}

func (r *apiRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	data, err := r.client.GetSpellData(ctx, input.Title)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load metadata for %q", input.Title)
	}

	md := &Metadata{Title: data.Name}
	tag, hasArea := apiAreaTags[data.AreaType]
	if hasArea {
		md.Tags = append(md.Tags, tag)
	}

	var spellType *vocab.SpellType
	switch {
	case hasArea && data.DamageType != "":
		t := vocab.SpellTypeAreaOfEffect
		spellType = &t
	case data.DamageType != "":
		t := vocab.SpellTypeDamage
		spellType = &t
	}
	md.SpellType = spellType

	return &GetOutput{Metadata: md}, nil
}

var _ Repository = (*apiRepository)(nil)
