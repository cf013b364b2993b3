package spellmetadata

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
)

type chain struct {
	repositories []Repository
}

// NewChain asks each repository in turn and returns the first hit. A
// failing repository is logged and skipped so a remote fallback never
// breaks a scrape.
func NewChain(repositories ...Repository) Repository {
	return &chain{repositories: repositories}
}

func (c *chain) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	for _, repo := range c.repositories {
		out, err := repo.Get(ctx, input)
		if err == nil {
			return out, nil
		}
		if !errors.IsNotFound(err) {
			slog.Warn("spell metadata lookup failed",
				"title", input.Title,
				"error", err)
		}
	}
	return nil, errors.NotFoundf("no metadata for spell %q", input.Title).
		WithMeta("title", input.Title)
}

var _ Repository = (*chain)(nil)
