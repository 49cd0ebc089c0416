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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jorineg/linkedin-mcp/pkg/voyager"
)

func TestExtractPublicIdentifier(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"plain profile", "https://www.linkedin.com/in/jane-doe-123/", "jane-doe-123", true},
		{"no trailing slash", "https://www.linkedin.com/in/jane-doe-123", "jane-doe-123", true},
		{"extra path segments", "https://www.linkedin.com/in/jane-doe-123/details/experience/", "jane-doe-123", true},
		{"bare host", "https://linkedin.com/in/jane", "jane", true},
		{"country subdomain", "https://de.linkedin.com/in/jane", "jane", true},
		{"percent encoded", "https://www.linkedin.com/in/j%C3%BCrgen-m%C3%BCller", "jürgen-müller", true},
		{"uppercase host", "https://WWW.LinkedIn.COM/in/jane", "jane", true},
		{"company page", "https://www.linkedin.com/company/acme/", "", false},
		{"jobs page", "https://www.linkedin.com/jobs/view/123/", "", false},
		{"wrong domain", "https://example.com/in/jane", "", false},
		{"missing identifier", "https://www.linkedin.com/in/", "", false},
		{"whitespace identifier", "https://www.linkedin.com/in/%20%20/", "", false},
		{"empty string", "", "", false},
		{"not a url", "://nope", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := voyager.ExtractPublicIdentifier(tc.url)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfileURL(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe-123/", voyager.ProfileURL("jane-doe-123"))
}
