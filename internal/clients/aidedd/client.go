// Package aidedd fetches rules pages from aidedd.org, one language at a
// time, through the page cache.
package aidedd

//go:generate mockgen -destination=mock/mock_client.go -package=aideddmock github.com/KirkDiggler/rpg-cards/internal/clients/aidedd Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/KirkDiggler/rpg-cards/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-cards/internal/errors"
	pagecache "github.com/KirkDiggler/rpg-cards/internal/repositories/page_cache"
)

// Resource is a kind of rules page
type Resource string

const (
	ResourceSpell              Resource = "spell"
	ResourceMagicItem          Resource = "magic_item"
	ResourceFeat               Resource = "feat"
	ResourceEldritchInvocation Resource = "eldritch_invocation"
	ResourceClass              Resource = "class"
	ResourceAncestry           Resource = "ancestry"
	ResourceBackground         Resource = "background"
)

// Resources lists every page kind in display order
var Resources = []Resource{
	ResourceSpell,
	ResourceMagicItem,
	ResourceFeat,
	ResourceEldritchInvocation,
	ResourceClass,
	ResourceAncestry,
	ResourceBackground,
}

// Endpoints maps each resource to the page URL serving it
type Endpoints map[Resource]string

// DefaultEndpoints are the public aidedd.org pages
func DefaultEndpoints() Endpoints {
	return Endpoints{
		ResourceSpell:              "https://www.aidedd.org/dnd/sorts.php",
		ResourceMagicItem:          "https://www.aidedd.org/dnd/om.php",
		ResourceFeat:               "https://www.aidedd.org/dnd/dons.php",
		ResourceEldritchInvocation: "https://www.aidedd.org/dnd/invocations.php",
		ResourceClass:              "https://www.aidedd.org/dnd/classes.php",
		ResourceAncestry:           "https://www.aidedd.org/dnd/races.php",
		ResourceBackground:         "https://www.aidedd.org/dnd/historiques.php",
	}
}

// DefaultSpellFilterURL is the spell search form
const DefaultSpellFilterURL = "https://www.aidedd.org/dnd-filters/sorts.php"

const defaultUserAgent = "rpg-cards/1.0 (+https://github.com/KirkDiggler/rpg-cards)"

// FetchPageInput names the page to fetch
type FetchPageInput struct {
	Resource  Resource
	Reference dnd5e.Reference
}

// FetchPageOutput carries the page HTML
type FetchPageOutput struct {
	HTML      string
	FromCache bool
}

// ResolveSpellFilterInput selects spells by class and level range
type ResolveSpellFilterInput struct {
	Filter SpellFilter
}

// ResolveSpellFilterOutput lists the matching spell pages, all in French
type ResolveSpellFilterOutput struct {
	References []dnd5e.Reference
}

// Client defines the interface to the rules site
type Client interface {
	// FetchPage returns the HTML of one page, from the cache when possible
	FetchPage(ctx context.Context, input *FetchPageInput) (*FetchPageOutput, error)

	// ResolveSpellFilter expands a class and level range into spell references
	ResolveSpellFilter(ctx context.Context, input *ResolveSpellFilterInput) (*ResolveSpellFilterOutput, error)
}

// Config contains configuration options for the page client
type Config struct {
	HTTPClient *http.Client

	// Cache stores fetched pages. Required.
	Cache pagecache.Repository

	// Endpoints overrides the page URL per resource (optional)
	Endpoints Endpoints

	// SpellFilterURL overrides the spell search form (optional)
	SpellFilterURL string

	// BypassCache always fetches from the network. Fetched pages are still
	// written back to the cache.
	BypassCache bool

	// RequestsPerSecond throttles network fetches, zero means unlimited
	RequestsPerSecond float64

	UserAgent string
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Cache == nil {
		vb.RequiredField("cache")
	}
	if cfg.RequestsPerSecond < 0 {
		vb.Field("requests_per_second", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	defaults := DefaultEndpoints()
	if cfg.Endpoints == nil {
		cfg.Endpoints = defaults
	}
	for resource, endpoint := range defaults {
		if cfg.Endpoints[resource] == "" {
			cfg.Endpoints[resource] = endpoint
		}
	}
	if cfg.SpellFilterURL == "" {
		cfg.SpellFilterURL = DefaultSpellFilterURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return nil
}

type client struct {
	httpClient     *http.Client
	cache          pagecache.Repository
	endpoints      Endpoints
	spellFilterURL string
	bypassCache    bool
	userAgent      string
	limiter        *rate.Limiter
	inflight       singleflight.Group
}

// New creates a page client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &client{
		httpClient:     cfg.HTTPClient,
		cache:          cfg.Cache,
		endpoints:      cfg.Endpoints,
		spellFilterURL: cfg.SpellFilterURL,
		bypassCache:    cfg.BypassCache,
		userAgent:      cfg.UserAgent,
		limiter:        rate.NewLimiter(limit, 1),
	}, nil
}

// PageURL builds the URL of a page: the resource endpoint with the slug in
// the language query parameter.
func PageURL(endpoint string, ref dnd5e.Reference) string {
	values := url.Values{}
	values.Set(ref.Language.QueryParam(), ref.Slug)
	return endpoint + "?" + values.Encode()
}

func (c *client) FetchPage(ctx context.Context, input *FetchPageInput) (*FetchPageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	endpoint, ok := c.endpoints[input.Resource]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown resource %q", input.Resource)
	}
	key := input.Reference.String()

	if !c.bypassCache {
		cached, err := c.cache.Get(ctx, pagecache.GetInput{Resource: string(input.Resource), Key: key})
		switch {
		case err == nil:
			return &FetchPageOutput{HTML: cached.Page.HTML, FromCache: true}, nil
		case !errors.IsNotFound(err):
			slog.Warn("page cache read failed, fetching",
				"resource", input.Resource,
				"key", key,
				"error", err)
		}
	}

	// Concurrent requests for the same page share one fetch. The fetch is
	// detached from the caller that started it; each caller only stops
	// waiting on its own cancellation. The HTTP client timeout bounds it.
	shared := context.WithoutCancel(ctx)
	results := c.inflight.DoChan(string(input.Resource)+"/"+key, func() (any, error) {
		return c.fetch(shared, input.Resource, input.Reference, PageURL(endpoint, input.Reference))
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "fetch of %s canceled", key).
			WithMeta("resource", string(input.Resource)).
			WithMeta("key", key)
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return &FetchPageOutput{HTML: res.Val.(string)}, nil
	}
}

func (c *client) fetch(ctx context.Context, resource Resource, ref dnd5e.Reference, pageURL string) (string, error) {
	lang, slug := ref.Language.String(), ref.Slug

	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "rate limiter").WithMeta("url", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", errors.FetchFailed(lang, slug, pageURL, 0).WithMeta("cause", err.Error())
	}
	req.Header.Set("User-Agent", c.userAgent)

	body, status, err := c.do(req)
	if err != nil {
		fetchErr := errors.FetchFailed(lang, slug, pageURL, status)
		fetchErr.Cause = err
		return "", fetchErr
	}

	slog.Debug("fetched page",
		"resource", resource,
		"key", ref.String(),
		"bytes", len(body))

	if _, err := c.cache.Put(ctx, pagecache.PutInput{
		Resource: string(resource),
		Key:      ref.String(),
		HTML:     body,
	}); err != nil {
		slog.Warn("failed to cache page",
			"resource", resource,
			"key", ref.String(),
			"error", err)
	}

	return body, nil
}

// do sends the request and reads the body. Any non-2xx status is an error.
func (c *client) do(req *http.Request) (string, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

// spellFilterSources are the rule books searched by the spell filter
var spellFilterSources = []string{"base", "xgte", "tcoe", "ftod"}

func (c *client) ResolveSpellFilter(ctx context.Context, input *ResolveSpellFilterInput) (*ResolveSpellFilterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	letter, ok := classFilterLetters[input.Filter.Class]
	if !ok {
		return nil, errors.InvalidArgumentf("class %s has no spell list", input.Filter.Class).
			WithMeta("class", input.Filter.Class.ID())
	}

	form := url.Values{}
	form.Set("Filtre1[]", letter)
	form.Set("nivMin", strconv.Itoa(input.Filter.MinLevel))
	form.Set("nivMax", strconv.Itoa(input.Filter.MaxLevel))
	for _, source := range spellFilterSources {
		form.Add("source[]", source)
	}
	form.Set("opt_tcoe", "S")
	for _, col := range []string{"colE", "colI", "colC", "colR"} {
		form.Set(col, "on")
	}
	form.Set("filtrer", "FILTRER")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.spellFilterURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build spell filter request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	body, status, err := c.do(req)
	if err != nil {
		fetchErr := errors.FetchFailed(string(defaultFilterLanguage), input.Filter.String(), c.spellFilterURL, status)
		fetchErr.Cause = err
		return nil, fetchErr
	}

	refs, err := parseSpellFilterResults(body)
	if err != nil {
		return nil, err
	}

	slog.Info("resolved spell filter",
		"filter", input.Filter.String(),
		"spells", len(refs))

	return &ResolveSpellFilterOutput{References: refs}, nil
}

var _ Client = (*client)(nil)
