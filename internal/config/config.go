// Package config gathers the settings of the card generator. Values come
// from built-in defaults, then .env files, then CARDGEN_* environment
// variables; the CLI applies its flags last.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-cards/internal/clients/aidedd"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	"github.com/KirkDiggler/rpg-cards/internal/orchestrators/batch"
)

const envPrefix = "CARDGEN_"

// CacheBackend selects where fetched pages are kept
type CacheBackend string

const (
	CacheBackendDisk  CacheBackend = "disk"
	CacheBackendRedis CacheBackend = "redis"
)

// Config holds every setting of the generator
type Config struct {
	CacheBackend CacheBackend
	CacheDir     string
	RedisAddr    string
	BypassCache  bool

	Workers           int
	FailFast          bool
	RequestsPerSecond float64
	HTTPTimeout       time.Duration

	// Endpoints overrides the page URL of a resource
	Endpoints      aidedd.Endpoints
	SpellFilterURL string

	// UseDnd5eAPI adds the dnd5eapi.co lookup behind the embedded spell
	// metadata table
	UseDnd5eAPI bool
	Dnd5eAPIURL string

	// SpellColors overrides the spell level palette
	SpellColors []string

	GRPCPort int
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		CacheBackend: CacheBackendDisk,
		CacheDir:     defaultCacheDir(),
		RedisAddr:    "localhost:6379",
		Workers:      batch.DefaultWorkers,
		HTTPTimeout:  30 * time.Second,
		Endpoints:    aidedd.Endpoints{},
		GRPCPort:     50051,
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "rpg-cards")
	}
	return ".cache"
}

// Load reads the defaults, the given env files and the environment. Missing
// env files are skipped; variables already set in the environment win over
// the files.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from CARDGEN_* variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	vb := errors.NewValidationBuilder()

	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("CACHE_BACKEND"); ok {
		c.CacheBackend = CacheBackend(strings.ToLower(v))
	}
	if v, ok := get("CACHE_DIR"); ok {
		c.CacheDir = v
	}
	if v, ok := get("REDIS_ADDR"); ok {
		c.RedisAddr = v
	}
	if v, ok := get("NO_CACHE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			vb.Fieldf(envPrefix+"NO_CACHE", "not a boolean: %q", v)
		}
		c.BypassCache = b
	}
	if v, ok := get("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			vb.Fieldf(envPrefix+"WORKERS", "not an integer: %q", v)
		}
		c.Workers = n
	}
	if v, ok := get("FAIL_FAST"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			vb.Fieldf(envPrefix+"FAIL_FAST", "not a boolean: %q", v)
		}
		c.FailFast = b
	}
	if v, ok := get("RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			vb.Fieldf(envPrefix+"RATE_LIMIT", "not a number: %q", v)
		}
		c.RequestsPerSecond = f
	}
	if v, ok := get("HTTP_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			vb.Fieldf(envPrefix+"HTTP_TIMEOUT", "not a duration: %q", v)
		}
		c.HTTPTimeout = d
	}
	for _, resource := range aidedd.Resources {
		if v, ok := get("URL_" + strings.ToUpper(string(resource))); ok {
			c.Endpoints[resource] = v
		}
	}
	if v, ok := get("SPELL_FILTER_URL"); ok {
		c.SpellFilterURL = v
	}
	if v, ok := get("DND5E_API"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			vb.Fieldf(envPrefix+"DND5E_API", "not a boolean: %q", v)
		}
		c.UseDnd5eAPI = b
	}
	if v, ok := get("DND5E_API_URL"); ok {
		c.Dnd5eAPIURL = v
	}
	if v, ok := get("SPELL_COLORS"); ok {
		c.SpellColors = SplitList(v)
	}
	if v, ok := get("GRPC_PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			vb.Fieldf(envPrefix+"GRPC_PORT", "not an integer: %q", v)
		}
		c.GRPCPort = n
	}

	return vb.Build()
}

// Validate checks the settings are usable together
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.CacheBackend {
	case CacheBackendDisk:
		errors.ValidateRequired("cache_dir", c.CacheDir, vb)
	case CacheBackendRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	default:
		vb.Fieldf("cache_backend", "must be disk or redis, got %q", c.CacheBackend)
	}
	if c.Workers < 1 {
		vb.Fieldf("workers", "must be at least 1, got %d", c.Workers)
	}
	if c.RequestsPerSecond < 0 {
		vb.Field("rate_limit", "must not be negative")
	}
	if c.HTTPTimeout <= 0 {
		vb.Field("http_timeout", "must be positive")
	}
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)

	return vb.Build()
}

// SplitList splits a comma separated value, dropping blanks
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
