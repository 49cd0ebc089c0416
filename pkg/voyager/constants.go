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

const LinkedInBaseHost = "www.linkedin.com"

const (
	LinkedInBaseURL                = "https://" + LinkedInBaseHost
	linkedInVoyagerProfileViewPath = "/voyager/api/identity/profiles/%s/profileView"
)

// linkedInDomainSuffix is what a profile URL's host must end with to be
// accepted by ExtractPublicIdentifier.
const linkedInDomainSuffix = "linkedin.com"

const (
	LinkedInCookieJSESSIONID = "JSESSIONID"
	LinkedInCookieLang       = "lang"
	LinkedInCookieLiAt       = "li_at"
)

const (
	contentTypeJSONLinkedInNormalized = "application/vnd.linkedin.normalized+json+2.1"
)

const (
	// DefaultUserAgent mirrors the desktop browser profile the rest of the
	// materialized header set claims to be.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	defaultAcceptLanguage = "en-US,en;q=0.9"
	defaultLocale         = "en_US"

	restLIProtocolVersion = "2.0.0"
)
