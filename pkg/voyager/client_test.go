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

package voyager_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorineg/linkedin-mcp/pkg/voyager"
	"github.com/Jorineg/linkedin-mcp/pkg/voyager/graph"
)

func testSessionToken(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte(`{"cookies":[
		{"name":"li_at","value":"login-token"},
		{"name":"JSESSIONID","value":"\"ajax:12345\""}
	]}`))
}

func TestGetProfileSendsSessionHeaders(t *testing.T) {
	var seen http.Header
	var seenPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		seenPath = r.URL.Path
		w.Write([]byte(`{
			"data": {"*profile": "urn:li:fs_profile:p1"},
			"included": [{
				"$type": "com.linkedin.voyager.identity.profile.Profile",
				"entityUrn": "urn:li:fs_profile:p1",
				"firstName": "Jane", "lastName": "Doe"
			}]
		}`))
	}))
	defer ts.Close()

	client := voyager.NewClient(voyager.ClientOpts{BaseURL: ts.URL})
	doc, err := client.GetProfile(context.Background(), testSessionToken(t), "jane-doe-123")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.FullName)
	assert.Equal(t, "/voyager/api/identity/profiles/jane-doe-123/profileView", seenPath)
	assert.Equal(t, "ajax:12345", seen.Get("csrf-token"))
	assert.Equal(t, "li_at=login-token; JSESSIONID=ajax:12345", seen.Get("Cookie"))
	assert.Equal(t, "application/vnd.linkedin.normalized+json+2.1", seen.Get("Accept"))
	assert.Equal(t, "2.0.0", seen.Get("X-RestLI-Protocol-Version"))
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe-123/", seen.Get("Referer"))
}

func TestGetProfileRedirectMeansInvalidSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://www.linkedin.com/login", http.StatusFound)
	}))
	defer ts.Close()

	client := voyager.NewClient(voyager.ClientOpts{BaseURL: ts.URL})
	_, err := client.GetProfile(context.Background(), testSessionToken(t), "jane")
	assert.ErrorIs(t, err, voyager.ErrInvalidSession)
}

func TestGetProfileUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := voyager.NewClient(voyager.ClientOpts{BaseURL: ts.URL})
	_, err := client.GetProfile(context.Background(), testSessionToken(t), "jane")
	require.ErrorIs(t, err, voyager.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "429")
}

func TestGetProfileMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["unexpectedly", "an", "array"]`))
	}))
	defer ts.Close()

	client := voyager.NewClient(voyager.ClientOpts{BaseURL: ts.URL})
	_, err := client.GetProfile(context.Background(), testSessionToken(t), "jane")
	assert.ErrorIs(t, err, graph.ErrMalformedResponse)
}

func TestGetProfileTruncatedBody(t *testing.T) {
	// Declaring more bytes than the handler writes makes the server drop the
	// connection mid-body, so the read fails after a 200 status.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "4096")
		w.Write([]byte(`{"data": {`))
	}))
	defer ts.Close()

	client := voyager.NewClient(voyager.ClientOpts{BaseURL: ts.URL})
	_, err := client.GetProfile(context.Background(), testSessionToken(t), "jane")
	assert.ErrorIs(t, err, voyager.ErrUpstreamUnavailable)
}

func TestGetProfileBadToken(t *testing.T) {
	client := voyager.NewClient(voyager.ClientOpts{BaseURL: "http://localhost:0"})
	_, err := client.GetProfile(context.Background(), "definitely not a token", "jane")
	assert.ErrorIs(t, err, voyager.ErrInvalidCredentialFormat)
}
