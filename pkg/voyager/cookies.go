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

import "strings"

// Cookie is a single name/value pair from a decoded session token.
type Cookie struct {
	Name  string
	Value string
}

// Jar holds the cookies of one materialized session. Unlike a real
// [net/http.CookieJar] it keeps insertion order, so that the serialized
// Cookie header is a deterministic function of the token. A Jar is built
// once per request and never mutated afterwards.
type Jar struct {
	cookies []Cookie
}

// Get returns the value of the cookie with exactly the given name, or ""
// if there is none.
func (j *Jar) Get(name string) string {
	for _, c := range j.cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// GetFold is like Get but matches the name case-insensitively. Only the
// JSESSIONID and lang lookups use it; every other cookie name is matched
// exactly.
func (j *Jar) GetFold(name string) string {
	for _, c := range j.cookies {
		if strings.EqualFold(c.Name, name) {
			return c.Value
		}
	}
	return ""
}

// Len returns the number of cookies in the jar.
func (j *Jar) Len() int {
	return len(j.cookies)
}

// Header serializes the jar into a Cookie request header value, in
// insertion order.
func (j *Jar) Header() string {
	var sb strings.Builder
	for i, c := range j.cookies {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(c.Name)
		sb.WriteByte('=')
		sb.WriteString(c.Value)
	}
	return sb.String()
}
