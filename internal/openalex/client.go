// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex looks up authors and claimed works in the OpenAlex API.
// Transport failures never reach the caller: each failed request is logged
// with its response body and reported as a nil result for that request only.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/orcid-works/internal/httputil"
	"github.com/pdiddy/orcid-works/pkg/types"
)

// DefaultBaseURL is the OpenAlex API root.
const DefaultBaseURL = "https://api.openalex.org"

const (
	defaultTimeout   = 30 * time.Second
	defaultRateLimit = 10.0
	defaultUserAgent = "orcid-works/0.1"

	// maxErrorBody bounds how much of a failed response is logged.
	maxErrorBody = 1 << 20
	// maxBody bounds a decoded response.
	maxBody = 10 << 20
)

// Client queries the OpenAlex /authors and /works endpoints. A Client reuses
// one http.Client for every request; calls are made serially.
type Client struct {
	cfg     types.OpenAlexConfig
	http    *http.Client
	limiter *httputil.Limiter
	logger  zerolog.Logger
}

// New creates a Client from cfg, filling unset fields with defaults.
func New(cfg types.OpenAlexConfig, logger zerolog.Logger) *Client {
	cfg = withDefaults(cfg)
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

// NewWithHTTPClient creates a Client that sends requests through client.
// Tests use it with an httptest server's client.
func NewWithHTTPClient(cfg types.OpenAlexConfig, client *http.Client, logger zerolog.Logger) *Client {
	cfg = withDefaults(cfg)
	return &Client{
		cfg:     cfg,
		http:    client,
		limiter: httputil.NewLimiter(cfg.RateLimit, cfg.Burst),
		logger:  logger.With().Str("component", "openalex").Logger(),
	}
}

func withDefaults(cfg types.OpenAlexConfig) types.OpenAlexConfig {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return cfg
}

// ResolveAuthor searches for authors whose display name fuzzily matches
// q.Name and whose last known institution is q.InstitutionROR. It returns
// nil when the request fails.
func (c *Client) ResolveAuthor(ctx context.Context, q types.AuthorQuery) *AuthorsResponse {
	var resp AuthorsResponse
	if !c.get(ctx, "/authors", AuthorFilter(q), &resp) {
		return nil
	}
	return &resp
}

// FetchWorks searches for each claim among authorID's works. The sequence
// yields exactly one (claim, response) pair per claim, in input order, and
// issues each request only when the consumer asks for the next pair. The
// response is nil when that claim's request failed; other claims are
// unaffected. Iteration stops early if ctx is done.
func (c *Client) FetchWorks(ctx context.Context, authorID string, claims []types.WorkClaim) iter.Seq2[types.WorkClaim, *WorksResponse] {
	return func(yield func(types.WorkClaim, *WorksResponse) bool) {
		for _, claim := range claims {
			if ctx.Err() != nil {
				return
			}
			c.logger.Debug().Str("title", claim.Title).Msg("fetching work")

			var resp WorksResponse
			var out *WorksResponse
			if c.get(ctx, "/works", WorkFilter(authorID, claim), &resp) {
				out = &resp
			}
			if !yield(claim, out) {
				return
			}
		}
	}
}

// get issues a filtered GET against path and decodes the body into out.
// It reports false, after logging, on any transport, status, or decode failure.
func (c *Client) get(ctx context.Context, path, filter string, out any) bool {
	params := url.Values{"filter": {filter}}
	if c.cfg.Email != "" {
		params.Set("mailto", c.cfg.Email)
	}
	reqURL := c.cfg.BaseURL + path + "?" + params.Encode()
	log := c.logger.With().Str("path", path).Str("filter", filter).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Error().Err(err).Msg("creating request")
		return false
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, c.http, c.limiter, req, c.cfg.MaxRetries)
	if err != nil {
		log.Error().Err(err).Msg("OpenAlex API request failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("OpenAlex API returned an error")
		return false
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		log.Error().Err(fmt.Errorf("parsing OpenAlex response: %w", err)).Msg("OpenAlex API returned an unreadable body")
		return false
	}
	return true
}
