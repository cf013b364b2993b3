// Package spellmetadata supplies the spell details the rules pages do not
// carry, such as the shape of an area of effect. Entries are keyed by the
// English spell title.
package spellmetadata

import (
	"context"

	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmetadatamock github.com/KirkDiggler/rpg-cards/internal/repositories/spell_metadata Repository

// Metadata is what is known about one spell
type Metadata struct {
	Title string

	// Tags are area tags (S, N, L, ...) and target tags (ST, MT)
	Tags []string

	SpellType *vocab.SpellType
}

// Shape is the first area shape among the tags, skipping target tags
func (m *Metadata) Shape() (vocab.SpellShape, bool) {
	if m == nil {
		return 0, false
	}
	return vocab.ShapeFromTags(m.Tags)
}

// GetInput contains parameters for a metadata lookup
type GetInput struct {
	// Title is the English title of the spell
	Title string
}

// GetOutput contains the spell metadata
type GetOutput struct {
	Metadata *Metadata
}

// Repository defines the interface for spell metadata lookups
type Repository interface {
	// Get returns the metadata of a spell, or a NotFound error
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}
