// Package redis wraps the go-redis client used by the shared page cache.
package redis

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance. endpoint is either
// host:port or a redis:// (rediss://) URL.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{Addr: endpoint}
	if strings.Contains(endpoint, "://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, err
		}
		redisOpts = parsed
	}

	redisOpts.MinIdleConns = opts.MinIdleConns
	redisOpts.PoolSize = opts.PoolSize
	redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	redisOpts.MaxRetries = opts.MaxRetries

	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}
