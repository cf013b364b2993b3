// Package pagecache stores fetched rules pages so that repeated runs never
// hit the rules site twice for the same page. Entries never expire; the
// page client bypasses the cache when asked to refresh.
package pagecache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=pagecachemock github.com/KirkDiggler/rpg-cards/internal/repositories/page_cache Repository

// Page is one cached HTML document
type Page struct {
	// Resource is the kind of page (spell, magic_item, ...)
	Resource string

	// Key is the lang:slug of the page
	Key string

	HTML string

	FetchedAt time.Time
}

// GetInput contains parameters for reading a cached page
type GetInput struct {
	Resource string
	Key      string
}

// GetOutput contains the cached page
type GetOutput struct {
	Page *Page
}

// PutInput contains parameters for storing a page
type PutInput struct {
	Resource string
	Key      string
	HTML     string
}

// PutOutput contains the stored page
type PutOutput struct {
	Page *Page
}

// Repository defines the interface for page cache storage
type Repository interface {
	// Get returns the cached page, or a NotFound error on a miss
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a page, replacing any previous version atomically
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}
