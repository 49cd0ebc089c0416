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

// Package voyager is a minimal client for LinkedIn's internal Voyager API,
// impersonating a logged-in browser session from a caller-supplied cookie
// set. It fetches profiles only; the caller owns authentication, retries and
// rate limiting.
package voyager

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jorineg/linkedin-mcp/pkg/voyager/graph"
)

const defaultTimeout = 20 * time.Second

// statusExcerptLimit bounds how much upstream body text an error message may
// carry, so failures never leak large or sensitive payloads into logs.
const statusExcerptLimit = 300

// ClientOpts configures a Client. The zero value is usable.
type ClientOpts struct {
	// UserAgent overrides the default browser user agent.
	UserAgent string
	// Timeout bounds a whole profile fetch including body read.
	Timeout time.Duration
	// BaseURL replaces the production endpoint, for tests.
	BaseURL string
}

// Client fetches LinkedIn profiles. It holds no session state: every call
// materializes its headers from the session token it is given, so a single
// Client is safe for concurrent use across unrelated sessions.
type Client struct {
	http      *http.Client
	userAgent string
	baseURL   string
}

func NewClient(opts ClientOpts) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = LinkedInBaseURL
	}
	return &Client{
		userAgent: opts.UserAgent,
		baseURL:   baseURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: timeout,
				ForceAttemptHTTP2:     true,
			},

			// Disallow redirects entirely: an expired session answers the
			// profile endpoint with a 302 to the login page, and that has to
			// stay observable.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// GetProfileRaw fetches the raw normalized graph payload for a profile. The
// session token is decoded fresh on every call.
func (c *Client) GetProfileRaw(ctx context.Context, sessionToken, publicIdentifier string) ([]byte, error) {
	jar, err := ParseSessionToken(sessionToken)
	if err != nil {
		return nil, err
	}

	escapedID := url.PathEscape(publicIdentifier)
	headers := BuildHeaders(jar, HeaderOpts{
		Referer:   ProfileURL(publicIdentifier),
		UserAgent: c.userAgent,
	})

	zerolog.Ctx(ctx).Debug().
		Str("public_identifier", publicIdentifier).
		Int("cookies", jar.Len()).
		Msg("Fetching profile view")

	resp, err := c.newRequest(http.MethodGet, c.baseURL+fmt.Sprintf(linkedInVoyagerProfileViewPath, escapedID)).
		WithHeaders(headers).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return nil, fmt.Errorf("%w: got redirect to %s", ErrInvalidSession, resp.Header.Get("Location"))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d - %s", ErrUpstreamUnavailable, resp.StatusCode, bodyExcerpt(resp.Body))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrUpstreamUnavailable, err)
	}
	return body, nil
}

// GetProfile fetches a profile and projects it into a flat document.
func (c *Client) GetProfile(ctx context.Context, sessionToken, publicIdentifier string) (*graph.Document, error) {
	raw, err := c.GetProfileRaw(ctx, sessionToken, publicIdentifier)
	if err != nil {
		return nil, err
	}
	resp, err := graph.Parse(raw)
	if err != nil {
		return nil, err
	}
	return graph.Project(resp), nil
}

func bodyExcerpt(r io.Reader) string {
	excerpt, _ := io.ReadAll(io.LimitReader(r, statusExcerptLimit))
	return string(excerpt)
}
