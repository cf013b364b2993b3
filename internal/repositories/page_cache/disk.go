package pagecache

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/pkg/clock"
)

const (
	errResourceEmpty = "resource cannot be empty"
	errKeyEmpty      = "key cannot be empty"
)

// DiskConfig holds the configuration for the disk repository
type DiskConfig struct {
	// Dir is the cache root; each resource gets a sub-directory
	Dir   string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *DiskConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", c.Dir, vb)
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type diskRepository struct {
	dir   string
	clock clock.Clock
}

// NewDiskRepository creates a page cache storing one file per page
func NewDiskRepository(cfg *DiskConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &diskRepository{
		dir:   cfg.Dir,
		clock: cfg.Clock,
	}, nil
}

// Ensure diskRepository implements Repository
var _ Repository = (*diskRepository)(nil)

func (r *diskRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.Resource, input.Key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("page %s is not cached", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to stat cached page %s", input.Key)
	}

	html, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cached page %s", input.Key)
	}

	return &GetOutput{
		Page: &Page{
			Resource:  input.Resource,
			Key:       input.Key,
			HTML:      string(html),
			FetchedAt: info.ModTime(),
		},
	}, nil
}

// Put writes to a temporary file in the same directory and renames it over
// the final name, so readers only ever see complete pages.
func (r *diskRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	path, err := r.path(input.Resource, input.Key)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".page-*")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create temporary file for %s", input.Key)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(input.HTML); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrapf(err, "failed to write cached page %s", input.Key)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close cached page %s", input.Key)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.Wrapf(err, "failed to store cached page %s", input.Key)
	}

	return &PutOutput{
		Page: &Page{
			Resource:  input.Resource,
			Key:       input.Key,
			HTML:      input.HTML,
			FetchedAt: r.clock.Now(),
		},
	}, nil
}

func (r *diskRepository) path(resource, key string) (string, error) {
	if resource == "" {
		return "", errors.InvalidArgument(errResourceEmpty)
	}
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}
	if strings.ContainsAny(resource+key, `/\`) || strings.Contains(key, "..") {
		return "", errors.InvalidArgumentf("invalid cache key %s/%s", resource, key)
	}
	return filepath.Join(r.dir, resource, key), nil
}
