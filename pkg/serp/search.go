// linkedin-mcp - LinkedIn profile lookup and search over the Model Context Protocol.
// Copyright (C) 2026 Jorineg
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package serp discovers LinkedIn profiles through a Google results proxy.
// Queries are forcibly scoped to linkedin.com/in, and every result must
// still resolve to a profile identifier before it is returned, so the output
// can only ever contain personal profile pages.
package serp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jorineg/linkedin-mcp/pkg/voyager"
)

const defaultBaseURL = "https://api.scrapingdog.com/google/"

const defaultTimeout = 30 * time.Second

// siteRestriction is the sole query-construction-level guarantee that
// results are profile pages; per-result identifier resolution is the second,
// authoritative one.
const siteRestriction = "site:linkedin.com/in"

const (
	defaultCountry = "us"
	minResults     = 1
	maxResults     = 100
)

const excerptLimit = 300

var (
	// ErrMissingAPIKey means no search proxy API key is configured. It only
	// fails search calls; the rest of the server works without one.
	ErrMissingAPIKey = errors.New("missing search proxy API key")

	// ErrUpstreamUnavailable means the proxy answered with a non-200 status.
	ErrUpstreamUnavailable = errors.New("search proxy unavailable")

	// ErrUpstreamProtocol means the proxy answered 200 with a body that is
	// not parseable JSON.
	ErrUpstreamProtocol = errors.New("search proxy protocol error")
)

// Hit is one search result that resolved to a profile.
type Hit struct {
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
	Link       string `json:"link"`
	Rank       int    `json:"rank"`
	LinkedinID string `json:"linkedinId"`
}

// Client calls the search proxy. Stateless and safe for concurrent use.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string
}

// ClientOpts configures a Client. APIKey may be empty; searches will then
// fail with ErrMissingAPIKey until one is configured.
type ClientOpts struct {
	APIKey  string
	Timeout time.Duration
	BaseURL string
}

func NewClient(opts ClientOpts) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type organicResult struct {
	Title         string `json:"title"`
	Snippet       string `json:"snippet"`
	Link          string `json:"link"`
	DisplayedLink string `json:"displayed_link"`
	Rank          int    `json:"rank"`
}

type searchResponse struct {
	OrganicData []organicResult `json:"organic_data"`
}

// SearchProfiles runs a free-text person query restricted to LinkedIn
// profile URLs. count is clamped to [1,100] and page to >= 0; country
// defaults to "us". Results that do not resolve to a profile identifier are
// dropped, so fewer than count hits may come back.
func (c *Client) SearchProfiles(ctx context.Context, query, country string, count, page int) ([]Hit, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if count < minResults {
		count = minResults
	} else if count > maxResults {
		count = maxResults
	}
	if page < 0 {
		page = 0
	}
	if country == "" {
		country = defaultCountry
	}

	restricted := strings.TrimSpace(siteRestriction + " " + query)

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", restricted)
	params.Set("results", strconv.Itoa(count))
	params.Set("country", country)
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("query", restricted).
		Int("results", count).
		Int("page", page).
		Msg("Querying search proxy")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, excerptLimit))
		return nil, fmt.Errorf("%w: HTTP %d - %s", ErrUpstreamUnavailable, resp.StatusCode, excerpt)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamProtocol, err)
	}

	hits := make([]Hit, 0, len(payload.OrganicData))
	for _, item := range payload.OrganicData {
		link := item.Link
		if link == "" {
			link = item.DisplayedLink
		}
		id, ok := voyager.ExtractPublicIdentifier(link)
		if !ok {
			// Not a profile page, or malformed; dropping it keeps the
			// profiles-only guarantee.
			continue
		}
		hits = append(hits, Hit{
			Title:      item.Title,
			Snippet:    item.Snippet,
			Link:       link,
			Rank:       item.Rank,
			LinkedinID: id,
		})
	}
	return hits, nil
}
