package pagecache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-cards/internal/redis"
)

// Key pattern: page_cache:{resource}:{lang}:{slug}
const pageKeyPrefix = "page_cache:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a page cache shared through Redis
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

type storedPage struct {
	HTML      string    `json:"html"`
	FetchedAt time.Time `json:"fetched_at"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Resource, input.Key); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, buildKey(input.Resource, input.Key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("page %s is not cached", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get page %s from Redis", input.Key)
	}

	var stored storedPage
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cached page %s", input.Key)
	}

	return &GetOutput{
		Page: &Page{
			Resource:  input.Resource,
			Key:       input.Key,
			HTML:      stored.HTML,
			FetchedAt: stored.FetchedAt,
		},
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateKey(input.Resource, input.Key); err != nil {
		return nil, err
	}

	page := &Page{
		Resource:  input.Resource,
		Key:       input.Key,
		HTML:      input.HTML,
		FetchedAt: r.clock.Now(),
	}

	data, err := json.Marshal(storedPage{HTML: page.HTML, FetchedAt: page.FetchedAt})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal page %s", input.Key)
	}

	// No TTL: entries live until overwritten
	if err := r.client.Set(ctx, buildKey(input.Resource, input.Key), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store page %s in Redis", input.Key)
	}

	return &PutOutput{Page: page}, nil
}

func validateKey(resource, key string) error {
	if resource == "" {
		return errors.InvalidArgument(errResourceEmpty)
	}
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}

func buildKey(resource, key string) string {
	return pageKeyPrefix + resource + ":" + key
}
