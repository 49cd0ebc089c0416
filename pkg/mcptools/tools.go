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

// Package mcptools binds the voyager and serp clients into the four MCP
// tools the server exposes.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/Jorineg/linkedin-mcp/pkg/serp"
	"github.com/Jorineg/linkedin-mcp/pkg/voyager"
	"github.com/Jorineg/linkedin-mcp/pkg/voyager/graph"
)

// SessionHeader is the HTTP header (matched case-insensitively) that carries
// the caller's encoded session token.
const SessionHeader = "linkedin_session"

// searchResultCount is the fixed result count used by the plain search tool.
const searchResultCount = 10

// Tools holds the collaborators shared by all tool handlers. Handlers keep
// no state of their own, so concurrent tool calls are safe.
type Tools struct {
	LinkedIn *voyager.Client
	Search   *serp.Client
	Log      zerolog.Logger
}

// Register adds the four tools to an MCP server.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "get_profile",
		Description: `Fetch a LinkedIn profile by publicIdentifier and return summary, experience, education, and skills.
The public identifier is the part of the profile URL after /in/.
Requires a 'linkedin_session' request header carrying the encoded session cookies.`,
	}, t.handleGetProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name: "search",
		Description: `Search for relevant LinkedIn profiles for a free-text query (e.g. name, company, title).
The search is restricted to LinkedIn profile URLs. Returns a single text content item whose text
is a JSON-encoded {"results": [{"id", "title", "url", "snippet", "rank"}]} payload.`,
	}, t.handleSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name: "fetch",
		Description: `Fetch a LinkedIn profile by its publicIdentifier and return a document.
Returns a single text content item whose text is a JSON-encoded
{"id", "title", "text", "url", "metadata"} payload; "text" holds the profile JSON as a string.
Requires a 'linkedin_session' request header carrying the encoded session cookies.`,
	}, t.handleFetch)

	mcp.AddTool(server, &mcp.Tool{
		Name: "search_linkedin_profiles",
		Description: `LinkedIn-only people search. ALWAYS restricted to LinkedIn profile URLs (paths under /in/);
do not use it for companies, jobs, posts, or non-LinkedIn sites. Returns items with title, snippet,
link, rank, and linkedinId suitable for get_profile. results is clamped to 1-100 (default 10),
page starts at 0, country is a 2-letter code (default "us").`,
	}, t.handleSearchProfiles)
}

type getProfileArgs struct {
	PublicIdentifier string `json:"publicIdentifier"`
}

type searchArgs struct {
	Query string `json:"query"`
}

type fetchArgs struct {
	ID string `json:"id"`
}

type searchProfilesArgs struct {
	Query   string `json:"query"`
	Country string `json:"country,omitempty"`
	Results *int   `json:"results,omitempty"`
	Page    int    `json:"page,omitempty"`
}

type searchResultRow struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Rank    int    `json:"rank"`
}

type fetchMetadata struct {
	Source   string `json:"source"`
	Headline string `json:"headline"`
	Location string `json:"location"`
	Industry string `json:"industry"`
}

type fetchDocument struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Text     string        `json:"text"`
	URL      string        `json:"url"`
	Metadata fetchMetadata `json:"metadata"`
}

func (t *Tools) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, args getProfileArgs) (*mcp.CallToolResult, *graph.Document, error) {
	ctx = t.toolContext(ctx, "get_profile")
	token, err := sessionToken(req)
	if err != nil {
		return errorResult(err), nil, nil
	}
	doc, err := t.LinkedIn.GetProfile(ctx, token, args.PublicIdentifier)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Profile fetch failed")
		return errorResult(err), nil, nil
	}
	return nil, doc, nil
}

func (t *Tools) handleSearch(ctx context.Context, req *mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, any, error) {
	ctx = t.toolContext(ctx, "search")
	hits, err := t.Search.SearchProfiles(ctx, args.Query, "", searchResultCount, 0)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Search failed")
		return errorResult(err), nil, nil
	}
	rows := make([]searchResultRow, 0, len(hits))
	for _, hit := range hits {
		rows = append(rows, searchResultRow{
			ID:      hit.LinkedinID,
			Title:   hit.Title,
			URL:     hit.Link,
			Snippet: hit.Snippet,
			Rank:    hit.Rank,
		})
	}
	return textContentResult(map[string]any{"results": rows})
}

func (t *Tools) handleFetch(ctx context.Context, req *mcp.CallToolRequest, args fetchArgs) (*mcp.CallToolResult, any, error) {
	ctx = t.toolContext(ctx, "fetch")
	token, err := sessionToken(req)
	if err != nil {
		return errorResult(err), nil, nil
	}
	doc, err := t.fetchProfileDocument(ctx, token, args.ID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Profile fetch failed")
		return errorResult(err), nil, nil
	}
	return textContentResult(doc)
}

// fetchProfileDocument retrieves a profile and reshapes it into the document
// form the fetch tool returns.
func (t *Tools) fetchProfileDocument(ctx context.Context, token, id string) (fetchDocument, error) {
	profile, err := t.LinkedIn.GetProfile(ctx, token, id)
	if err != nil {
		return fetchDocument{}, err
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fetchDocument{}, err
	}
	title := profile.FullName
	if title == "" {
		title = id
	}
	return fetchDocument{
		ID:    id,
		Title: title,
		Text:  string(profileJSON),
		URL:   voyager.ProfileURL(id),
		Metadata: fetchMetadata{
			Source:   "linkedin_profile",
			Headline: profile.Headline,
			Location: profile.Location,
			Industry: profile.Industry,
		},
	}, nil
}

func (t *Tools) handleSearchProfiles(ctx context.Context, req *mcp.CallToolRequest, args searchProfilesArgs) (*mcp.CallToolResult, any, error) {
	ctx = t.toolContext(ctx, "search_linkedin_profiles")
	count := searchResultCount
	if args.Results != nil {
		count = *args.Results
	}
	hits, err := t.Search.SearchProfiles(ctx, args.Query, args.Country, count, args.Page)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Search failed")
		return errorResult(err), nil, nil
	}
	return textContentResult(hits)
}

// sessionToken finds the caller's session token in the request headers. The
// header name match is case-insensitive.
func sessionToken(req *mcp.CallToolRequest) (string, error) {
	if req != nil && req.Extra != nil && req.Extra.Header != nil {
		if v := req.Extra.Header.Get(SessionHeader); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: no %q header on request", voyager.ErrMissingCredential, SessionHeader)
}

// toolContext attaches a request-scoped logger so everything below can use
// zerolog.Ctx.
func (t *Tools) toolContext(ctx context.Context, tool string) context.Context {
	log := t.Log.With().
		Str("tool", tool).
		Str("request_id", uuid.NewString()).
		Logger()
	return log.WithContext(ctx)
}

// textContentResult wraps a payload in a single-element text content array
// holding the JSON-encoded payload as a string. Consumers decode the text
// field to reach the payload; the double encoding is the fixed wire
// contract.
func textContentResult(payload any) (*mcp.CallToolResult, any, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(encoded)}},
	}, nil, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
