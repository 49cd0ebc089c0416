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
	"fmt"
	"net/url"
	"strings"
)

// ExtractPublicIdentifier pulls the public identifier (the slug after /in/)
// out of a LinkedIn profile URL. Company pages, job postings and anything
// else that is not a /in/ profile path yield ("", false), as does any URL
// that cannot be parsed. The identifier is returned percent-decoded and
// trimmed, otherwise verbatim.
func ExtractPublicIdentifier(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if !strings.HasSuffix(host, linkedInDomainSuffix) {
		return "", false
	}

	var segments []string
	for _, seg := range strings.Split(u.EscapedPath(), "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) < 2 || segments[0] != "in" {
		return "", false
	}

	id, err := url.PathUnescape(segments[1])
	if err != nil {
		return "", false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", false
	}
	return id, true
}

// ProfileURL builds the canonical public URL for a profile identifier.
func ProfileURL(publicIdentifier string) string {
	return fmt.Sprintf("%s/in/%s/", LinkedInBaseURL, url.PathEscape(publicIdentifier))
}
