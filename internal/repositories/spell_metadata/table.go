package spellmetadata

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/vocab"
)

//go:embed data/spells.json
var embeddedSpells []byte

type tableEntry struct {
	Tags []string `json:"tags"`
	Type string   `json:"type"`
}

type tableRepository struct {
	entries map[string]*Metadata
}

// NewTableRepository loads the embedded spell table
func NewTableRepository() (Repository, error) {
	return NewTableRepositoryFromJSON(embeddedSpells)
}

// NewTableRepositoryFromJSON loads a table of the form
// {"Fireball": {"tags": ["S"], "type": "aoe"}}
func NewTableRepositoryFromJSON(data []byte) (Repository, error) {
	var raw map[string]tableEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode spell metadata table")
	}

	entries := make(map[string]*Metadata, len(raw))
	for title, entry := range raw {
		md := &Metadata{Title: title, Tags: entry.Tags}
		if entry.Type != "" {
			spellType, ok := vocab.SpellTypeByID(entry.Type)
			if !ok {
				return nil, errors.InvalidArgumentf("spell %q has unknown type %q", title, entry.Type)
			}
			md.SpellType = &spellType
		}
		entries[tableKey(title)] = md
	}

	return &tableRepository{entries: entries}, nil
}

func tableKey(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(title, "’", "'")), " "))
}

func (r *tableRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	md, ok := r.entries[tableKey(input.Title)]
	if !ok {
		return nil, errors.NotFoundf("no metadata for spell %q", input.Title).
			WithMeta("title", input.Title)
	}
	return &GetOutput{Metadata: md}, nil
}

var _ Repository = (*tableRepository)(nil)
