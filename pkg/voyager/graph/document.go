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

package graph

// Document is the flat profile projected out of a normalized graph response.
// Scalar fields are empty strings when the graph carried no value; fullName
// is always present (possibly empty), never null.
type Document struct {
	FullName   string     `json:"fullName"`
	Headline   string     `json:"headline,omitempty"`
	Occupation string     `json:"occupation,omitempty"`
	Location   string     `json:"location,omitempty"`
	Industry   string     `json:"industry,omitempty"`
	Experience []Position `json:"experience"`
	Education  []School   `json:"education"`
	Skills     []string   `json:"skills"`
}

// Position is one experience entry. Every field is optional.
type Position struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}

// School is one education entry.
type School struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}
