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

package voyager

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type apiRequest struct {
	parseErr error

	method string
	url    *url.URL
	header http.Header
	params url.Values

	client *Client
}

func (c *Client) newRequest(method, urlStr string) *apiRequest {
	ar := apiRequest{header: http.Header{}, method: method, client: c}
	ar.url, ar.parseErr = url.Parse(urlStr)
	if ar.parseErr == nil {
		ar.params = ar.url.Query()
	} else {
		ar.params = url.Values{}
	}
	return &ar
}

func (a *apiRequest) WithHeader(key, value string) *apiRequest {
	a.header.Set(key, value)
	return a
}

// WithHeaders replaces the request's headers with a prebuilt set, typically
// the output of BuildHeaders.
func (a *apiRequest) WithHeaders(header http.Header) *apiRequest {
	a.header = header
	return a
}

func (a *apiRequest) WithParam(key, value string) *apiRequest {
	a.params.Add(key, value)
	return a
}

func (a *apiRequest) Do(ctx context.Context) (*http.Response, error) {
	if a.parseErr != nil {
		return nil, a.parseErr
	}
	a.url.RawQuery = a.params.Encode()

	req, err := http.NewRequestWithContext(ctx, a.method, a.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", a.method, a.url, err)
	}
	req.Header = a.header
	return a.client.http.Do(req)
}
