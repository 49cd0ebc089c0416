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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"go.mau.fi/util/exerrors"
)

// ParseSessionToken decodes an opaque session token into a cookie jar. The
// token is either base64 of a JSON document or the JSON document itself; the
// document is either a bare array of {name, value} objects or an object with
// a "cookies" array. Elements without a name are dropped silently. A token
// that fits neither encoding, or that yields zero usable cookies, fails with
// ErrInvalidCredentialFormat.
func ParseSessionToken(token string) (*Jar, error) {
	token = strings.TrimSpace(token)
	if decoded, ok := decodeBase64Token(token); ok {
		if jar, ok := jarFromJSON(decoded); ok {
			return jar, nil
		}
	}
	if jar, ok := jarFromJSON([]byte(token)); ok {
		return jar, nil
	}
	return nil, fmt.Errorf("%w: token is neither base64-encoded JSON nor JSON", ErrInvalidCredentialFormat)
}

// decodeBase64Token tolerates the URL-safe alphabet and missing padding.
func decodeBase64Token(token string) ([]byte, bool) {
	s := strings.ReplaceAll(token, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

func jarFromJSON(data []byte) (*Jar, bool) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, false
	}

	var elements []any
	switch v := root.(type) {
	case []any:
		elements = v
	case map[string]any:
		arr, ok := v["cookies"].([]any)
		if !ok {
			return nil, false
		}
		elements = arr
	default:
		return nil, false
	}

	jar := &Jar{}
	for _, element := range elements {
		obj, ok := element.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["name"].(string)
		if name == "" {
			continue
		}
		value, _ := obj["value"].(string)
		if strings.EqualFold(name, LinkedInCookieJSESSIONID) {
			value = stripWrappingQuotes(value)
		}
		jar.cookies = append(jar.cookies, Cookie{Name: name, Value: value})
	}
	if jar.Len() == 0 {
		return nil, false
	}
	return jar, true
}

// stripWrappingQuotes removes one pair of literal double quotes around a
// value. LinkedIn serves JSESSIONID quoted and expects it bare in the
// csrf-token header.
func stripWrappingQuotes(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}

// HeaderOpts tweaks the materialized header set. The zero value gives the
// default desktop-browser profile.
type HeaderOpts struct {
	Referer   string
	UserAgent string
	// Extra headers are set last and may override the defaults.
	Extra map[string]string
}

var langCookieRegex = regexp.MustCompile(`lang=([a-zA-Z-]+)`)

// xLITrack claims a fixed desktop web client. It stays constant so that
// BuildHeaders is a pure function of its inputs.
var xLITrack = string(exerrors.Must(json.Marshal(map[string]any{
	"clientVersion":    "1.13.0",
	"mpVersion":        "1.13.0",
	"osName":           "web",
	"timezoneOffset":   0,
	"timezone":         "UTC",
	"deviceFormFactor": "DESKTOP",
	"mpName":           "voyager-web",
	"displayDensity":   1,
	"displayWidth":     1920,
	"displayHeight":    1080,
})))

// BuildHeaders materializes the outbound header set the internal API expects
// from a decoded cookie jar. It is deterministic: the same jar and opts
// always produce the same headers.
//
// The csrf-token header is present iff the jar holds a non-empty JSESSIONID;
// its value is the cookie value prefixed with "ajax:" unless it already is.
// The x-li-lang header derives from the lang cookie; Accept-Language stays
// at a fixed default regardless.
func BuildHeaders(jar *Jar, opts HeaderOpts) http.Header {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	header := http.Header{}
	header.Set("User-Agent", userAgent)
	header.Set("Accept", contentTypeJSONLinkedInNormalized)
	header.Set("Accept-Language", defaultAcceptLanguage)
	header.Set("X-RestLI-Protocol-Version", restLIProtocolVersion)
	header.Set("X-LI-Lang", localeFromJar(jar))
	header.Set("X-LI-Track", xLITrack)
	header.Set("Cookie", jar.Header())
	if opts.Referer != "" {
		header.Set("Referer", opts.Referer)
	}

	if session := jar.GetFold(LinkedInCookieJSESSIONID); session != "" {
		if !strings.HasPrefix(session, "ajax:") {
			session = "ajax:" + session
		}
		header.Set("csrf-token", session)
	}

	for k, v := range opts.Extra {
		header.Set(k, v)
	}
	return header
}

// localeFromJar extracts the locale code out of a lang cookie value such as
// "v=2&lang=en-us", normalized to the underscore form the x-li-lang header
// uses. Missing or unparseable values fall back to the default locale.
func localeFromJar(jar *Jar) string {
	if lang := jar.GetFold(LinkedInCookieLang); lang != "" {
		if match := langCookieRegex.FindStringSubmatch(lang); match != nil {
			return strings.ReplaceAll(match[1], "-", "_")
		}
	}
	return defaultLocale
}
