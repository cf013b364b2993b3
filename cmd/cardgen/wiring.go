package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/clients/external"
	"github.com/KirkDiggler/rpg-cards/internal/config"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/cards"
	"github.com/KirkDiggler/rpg-cards/internal/palette"
	"github.com/KirkDiggler/rpg-cards/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-cards/internal/redis"
	"github.com/KirkDiggler/rpg-cards/internal/render"
	pagecache "github.com/KirkDiggler/rpg-cards/internal/repositories/page_cache"
	spellmetadata "github.com/KirkDiggler/rpg-cards/internal/repositories/spell_metadata"
	"github.com/KirkDiggler/rpg-cards/internal/scraping"
)

// newCardService builds the generation pipeline from the settings. The
// returned cleanup releases the cache connection.
func newCardService(c *config.Config) (cards.Service, func(), error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}

	cache, cleanup, err := newPageCache(c)
	if err != nil {
		return nil, nil, err
	}

	client, err := aidedd.New(&aidedd.Config{
		HTTPClient:        &http.Client{Timeout: c.HTTPTimeout},
		Cache:             cache,
		Endpoints:         c.Endpoints,
		SpellFilterURL:    c.SpellFilterURL,
		BypassCache:       c.BypassCache,
		RequestsPerSecond: c.RequestsPerSecond,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create page client: %w", err)
	}

	metadata, err := newSpellMetadata(c)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	scraper, err := scraping.New(&scraping.Config{
		Client:        client,
		SpellMetadata: metadata,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create scraper: %w", err)
	}

	colors, err := palette.SpellLevelColors(c.SpellColors)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("invalid spell colors: %w", err)
	}
	renderer, err := render.New(&render.Config{SpellLevelColors: colors})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	svc, err := cards.New(&cards.Config{
		Scraper:  scraper,
		Client:   client,
		Renderer: renderer,
		Workers:  c.Workers,
		FailFast: c.FailFast,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create card service: %w", err)
	}
	return svc, cleanup, nil
}

func newPageCache(c *config.Config) (pagecache.Repository, func(), error) {
	switch c.CacheBackend {
	case config.CacheBackendRedis:
		client, err := redisclient.NewClient(c.RedisAddr, &redisclient.Options{
			PoolSize:   c.Workers * 2,
			MaxRetries: 3,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Warn("failed to close redis client", "error", err)
			}
		}

		repo, err := pagecache.NewRedisRepository(&pagecache.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create redis page cache: %w", err)
		}
		slog.Debug("using redis page cache", "addr", c.RedisAddr)
		return repo, cleanup, nil

	default:
		repo, err := pagecache.NewDiskRepository(&pagecache.DiskConfig{
			Dir:   c.CacheDir,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create disk page cache: %w", err)
		}
		slog.Debug("using disk page cache", "dir", c.CacheDir)
		return repo, func() {}, nil
	}
}

// newSpellMetadata looks spells up in the embedded table first, then in the
// D&D 5e API when enabled
func newSpellMetadata(c *config.Config) (spellmetadata.Repository, error) {
	table, err := spellmetadata.NewTableRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to load spell metadata: %w", err)
	}
	if !c.UseDnd5eAPI {
		return table, nil
	}

	apiClient, err := external.New(&external.Config{
		BaseURL:     c.Dnd5eAPIURL,
		HTTPTimeout: c.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dnd5e api client: %w", err)
	}
	api, err := spellmetadata.NewAPIRepository(apiClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create dnd5e api metadata: %w", err)
	}
	return spellmetadata.NewChain(table, api), nil
}
