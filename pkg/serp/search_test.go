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

package serp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorineg/linkedin-mcp/pkg/serp"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*serp.Client, *url.Values) {
	t.Helper()
	var lastQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		handler(w, r)
	}))
	t.Cleanup(ts.Close)
	return serp.NewClient(serp.ClientOpts{APIKey: "test-key", BaseURL: ts.URL}), &lastQuery
}

func emptyResults(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"organic_data":[]}`))
}

func TestSearchProfilesFiltersNonProfiles(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic_data":[
			{"title": "ABC", "snippet": "a person", "link": "https://www.linkedin.com/in/abc", "rank": 1},
			{"title": "XYZ Corp", "snippet": "a company", "link": "https://www.linkedin.com/company/xyz", "rank": 2}
		]}`))
	})

	hits, err := client.SearchProfiles(context.Background(), "abc", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, serp.Hit{
		Title:      "ABC",
		Snippet:    "a person",
		Link:       "https://www.linkedin.com/in/abc",
		Rank:       1,
		LinkedinID: "abc",
	}, hits[0])
}

func TestSearchProfilesRestrictsQuery(t *testing.T) {
	client, lastQuery := newTestClient(t, emptyResults)

	_, err := client.SearchProfiles(context.Background(), "jane doe acme", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "site:linkedin.com/in jane doe acme", lastQuery.Get("query"))
	assert.Equal(t, "test-key", lastQuery.Get("api_key"))
}

func TestSearchProfilesEmptyQueryStillRestricted(t *testing.T) {
	client, lastQuery := newTestClient(t, emptyResults)

	_, err := client.SearchProfiles(context.Background(), "", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "site:linkedin.com/in", lastQuery.Get("query"))
}

func TestSearchProfilesClampsArguments(t *testing.T) {
	client, lastQuery := newTestClient(t, emptyResults)

	_, err := client.SearchProfiles(context.Background(), "x", "", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, "1", lastQuery.Get("results"))
	assert.Equal(t, "0", lastQuery.Get("page"))
	assert.Equal(t, "us", lastQuery.Get("country"))

	_, err = client.SearchProfiles(context.Background(), "x", "de", 150, 2)
	require.NoError(t, err)
	assert.Equal(t, "100", lastQuery.Get("results"))
	assert.Equal(t, "2", lastQuery.Get("page"))
	assert.Equal(t, "de", lastQuery.Get("country"))
}

func TestSearchProfilesUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of credits", http.StatusPaymentRequired)
	})

	_, err := client.SearchProfiles(context.Background(), "x", "", 10, 0)
	require.ErrorIs(t, err, serp.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "402")
	assert.Contains(t, err.Error(), "out of credits")
}

func TestSearchProfilesProtocolError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	})

	_, err := client.SearchProfiles(context.Background(), "x", "", 10, 0)
	assert.ErrorIs(t, err, serp.ErrUpstreamProtocol)
}

func TestSearchProfilesMissingAPIKey(t *testing.T) {
	client := serp.NewClient(serp.ClientOpts{})
	_, err := client.SearchProfiles(context.Background(), "x", "", 10, 0)
	assert.ErrorIs(t, err, serp.ErrMissingAPIKey)
}

func TestSearchProfilesDisplayedLinkFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic_data":[
			{"title": "No link", "displayed_link": "https://www.linkedin.com/in/fallback-id", "rank": 1}
		]}`))
	})

	hits, err := client.SearchProfiles(context.Background(), "x", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "fallback-id", hits[0].LinkedinID)
}
