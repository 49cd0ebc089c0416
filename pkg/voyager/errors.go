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

import "errors"

var (
	// ErrMissingCredential means the caller did not supply a session
	// credential at all. It is a client-input error, never retried.
	ErrMissingCredential = errors.New("missing session credential")

	// ErrInvalidCredentialFormat means the session token was neither
	// base64-of-JSON nor raw JSON, or decoded to zero usable cookies.
	ErrInvalidCredentialFormat = errors.New("invalid session credential format")

	// ErrInvalidSession means the upstream answered with a redirect, which
	// is how an expired or revoked login manifests. The caller should
	// re-authenticate rather than retry.
	ErrInvalidSession = errors.New("linkedin session is expired or invalid")

	// ErrUpstreamUnavailable means the upstream answered with an
	// unexpected status code.
	ErrUpstreamUnavailable = errors.New("linkedin upstream unavailable")
)
