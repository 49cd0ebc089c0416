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

// Package graph reconstructs a flat profile document from LinkedIn's
// normalized+json response format: a flat array of typed entity fragments
// that cross-reference each other by entityUrn strings.
package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedResponse is returned when the top-level payload is not a JSON
// object. Anything deeper than that degrades to absent fields instead of
// failing, since the upstream schema is undocumented and unstable.
var ErrMalformedResponse = errors.New("malformed normalized graph response")

// Fragment is one element of the `included` array: an open map of fields
// plus a `$type` discriminant. The response shape varies by account, locale
// and A/B cohort, so fragments are never decoded into fixed structs.
type Fragment map[string]any

// Type returns the fragment's `$type` tag, or "" if absent.
func (f Fragment) Type() string {
	s, _ := f["$type"].(string)
	return s
}

// URN returns the fragment's own reference identifier, or "" if absent.
func (f Fragment) URN() string {
	s, _ := f["entityUrn"].(string)
	return s
}

// String resolves the first of the given field aliases that holds a
// non-empty string. A dot in an alias descends one level into a nested
// object ("company.name").
func (f Fragment) String(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		var v any
		if outer, inner, ok := strings.Cut(alias, "."); ok {
			if sub, ok := f[outer].(map[string]any); ok {
				v = sub[inner]
			}
		} else {
			v = f[alias]
		}
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Object returns the first of the given field aliases that holds a JSON
// object, as a nested Fragment.
func (f Fragment) Object(aliases ...string) (Fragment, bool) {
	for _, alias := range aliases {
		if sub, ok := f[alias].(map[string]any); ok {
			return Fragment(sub), true
		}
	}
	return nil, false
}

// Response is the decoded normalized graph payload.
type Response struct {
	Data     Fragment
	Included []Fragment
}

// Parse decodes a raw normalized graph payload. The only rejected shape is a
// non-object top level; `included` entries that are not objects are dropped.
func Parse(raw []byte) (*Response, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrMalformedResponse
	}

	var shell struct {
		Data     json.RawMessage `json:"data"`
		Included json.RawMessage `json:"included"`
	}
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, ErrMalformedResponse
	}

	// data is usually an object of reference fields and included an array of
	// fragments, but tolerate anything below the top level
	var included []json.RawMessage
	if err := json.Unmarshal(shell.Included, &included); err != nil {
		included = nil
	}

	resp := &Response{Included: make([]Fragment, 0, len(included))}
	if err := json.Unmarshal(shell.Data, &resp.Data); err != nil {
		resp.Data = Fragment{}
	}
	for _, rawFragment := range included {
		var f Fragment
		if err := json.Unmarshal(rawFragment, &f); err == nil && f != nil {
			resp.Included = append(resp.Included, f)
		}
	}
	return resp, nil
}
