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

import (
	"strconv"
	"strings"
)

type kind int

const (
	kindProfile kind = iota
	kindMiniProfile
	kindPosition
	kindEducation
	kindSkill
)

// Type tags are matched by case-insensitive substring so that Voyager and
// dash variants ("com.linkedin.voyager.identity.profile.Position",
// "com.linkedin.voyager.dash.identity.profile.PositionGroup", ...) all land
// in the same bucket.
var kindMarkers = map[kind][]string{
	kindProfile:     {"identity.profile.profile"},
	kindMiniProfile: {"identity.shared.miniprofile"},
	kindPosition:    {"position", "positiongroup"},
	kindEducation:   {"education"},
	kindSkill:       {"skill"},
}

// Field alias chains, in precedence order. The upstream renames fields
// across API versions; new aliases get appended here rather than growing
// branching code.
var (
	firstNameAliases  = []string{"firstName"}
	lastNameAliases   = []string{"lastName"}
	headlineAliases   = []string{"headline"}
	occupationAliases = []string{"occupation"}
	locationAliases   = []string{"geoLocationName", "locationName"}
	industryAliases   = []string{"industryName", "industry"}

	positionTitleAliases   = []string{"title", "name", "positionName", "localizedTitle"}
	positionCompanyAliases = []string{"company.name", "companyName", "entityLocalizedName"}

	schoolAliases = []string{"schoolName", "school.name", "entityLocalizedName"}
	degreeAliases = []string{"degreeName", "degree"}

	skillNameAliases = []string{"name", "skill.name", "entityLocalizedName"}

	timePeriodAliases = []string{"timePeriod", "dateRange"}
	startDateAliases  = []string{"startDate", "start"}
	endDateAliases    = []string{"endDate", "end"}
)

// typeIndex groups the fragments of one response by kind and by entityUrn.
// It only lives for the duration of a single Project call.
type typeIndex struct {
	byURN  map[string]Fragment
	byKind map[kind][]Fragment
	all    []Fragment
}

func newTypeIndex(resp *Response) *typeIndex {
	ix := &typeIndex{
		byURN:  make(map[string]Fragment, len(resp.Included)),
		byKind: make(map[kind][]Fragment),
		all:    resp.Included,
	}
	for _, f := range resp.Included {
		if urn := f.URN(); urn != "" {
			if _, seen := ix.byURN[urn]; !seen {
				ix.byURN[urn] = f
			}
		}
		tag := strings.ToLower(f.Type())
		if tag == "" {
			continue
		}
		for k, markers := range kindMarkers {
			for _, marker := range markers {
				if strings.Contains(tag, marker) {
					ix.byKind[k] = append(ix.byKind[k], f)
					break
				}
			}
		}
	}
	return ix
}

// resolve looks a fragment up by reference. A missing reference yields
// (nil, false), never an error: the caller falls back to scanning.
func (ix *typeIndex) resolve(ref string) (Fragment, bool) {
	if ref == "" {
		return nil, false
	}
	f, ok := ix.byURN[ref]
	return f, ok
}

func (ix *typeIndex) firstOfKind(k kind) (Fragment, bool) {
	if fs := ix.byKind[k]; len(fs) > 0 {
		return fs[0], true
	}
	return nil, false
}

// scanString finds the first fragment, in included-array order, exposing any
// of the given aliases as a non-empty string.
func (ix *typeIndex) scanString(aliases ...string) (string, bool) {
	for _, f := range ix.all {
		if s, ok := f.String(aliases...); ok {
			return s, true
		}
	}
	return "", false
}

// Project turns a parsed normalized graph response into a flat profile
// document. It never fails: every missing link or field degrades to an
// absent value. The fallback precedence is reference lookup, then type-tag
// scan, then shape scan; the order decides which value wins when several
// candidates exist.
func Project(resp *Response) *Document {
	ix := newTypeIndex(resp)

	primary := resolvePrimaryProfile(resp, ix)
	mini := resolveMiniProfile(primary, ix)

	lookup := func(aliases []string) string {
		if primary != nil {
			if s, ok := primary.String(aliases...); ok {
				return s
			}
		}
		if mini != nil {
			if s, ok := mini.String(aliases...); ok {
				return s
			}
		}
		s, _ := ix.scanString(aliases...)
		return s
	}

	firstName := lookup(firstNameAliases)
	lastName := lookup(lastNameAliases)

	doc := &Document{
		FullName:   strings.TrimSpace(firstName + " " + lastName),
		Headline:   lookup(headlineAliases),
		Occupation: lookup(occupationAliases),
		Location:   lookup(locationAliases),
		Industry:   lookup(industryAliases),
		Experience: []Position{},
		Education:  []School{},
		Skills:     []string{},
	}

	for _, f := range ix.byKind[kindPosition] {
		title, _ := f.String(positionTitleAliases...)
		company, _ := f.String(positionCompanyAliases...)
		description, _ := f.String("description")
		start, end := resolveDates(f)
		doc.Experience = append(doc.Experience, Position{
			Title:       title,
			Company:     company,
			Description: description,
			Start:       start,
			End:         end,
		})
	}

	for _, f := range ix.byKind[kindEducation] {
		school, _ := f.String(schoolAliases...)
		degree, _ := f.String(degreeAliases...)
		start, end := resolveDates(f)
		doc.Education = append(doc.Education, School{
			School: school,
			Degree: degree,
			Start:  start,
			End:    end,
		})
	}

	for _, f := range ix.byKind[kindSkill] {
		if name, ok := f.String(skillNameAliases...); ok {
			doc.Skills = append(doc.Skills, name)
		}
	}

	return doc
}

// resolvePrimaryProfile applies the three-stage fallback: the data section's
// *profile reference, then the first profile-tagged fragment, then the first
// fragment that looks like a profile (has firstName and lastName strings).
func resolvePrimaryProfile(resp *Response, ix *typeIndex) Fragment {
	if ref, ok := resp.Data.String("*profile"); ok {
		if f, ok := ix.resolve(ref); ok {
			return f
		}
	}
	if f, ok := ix.firstOfKind(kindProfile); ok {
		return f
	}
	for _, f := range ix.all {
		_, hasFirst := f["firstName"].(string)
		_, hasLast := f["lastName"].(string)
		if hasFirst && hasLast {
			return f
		}
	}
	return nil
}

func resolveMiniProfile(primary Fragment, ix *typeIndex) Fragment {
	if primary != nil {
		if ref, ok := primary.String("*miniProfile"); ok {
			if f, ok := ix.resolve(ref); ok {
				return f
			}
		}
	}
	f, _ := ix.firstOfKind(kindMiniProfile)
	return f
}

// resolveDates extracts the normalized start/end strings from a fragment's
// time period sub-object.
func resolveDates(f Fragment) (start, end string) {
	period, ok := f.Object(timePeriodAliases...)
	if !ok {
		return "", ""
	}
	if d, ok := period.Object(startDateAliases...); ok {
		start = formatDate(d)
	}
	if d, ok := period.Object(endDateAliases...); ok {
		end = formatDate(d)
	}
	return start, end
}

// formatDate joins the present components of a {year, month, day} object
// into "Y[-M[-D]]". Absent components are skipped; an empty object yields "".
func formatDate(d Fragment) string {
	parts := make([]string, 0, 3)
	for _, key := range []string{"year", "month", "day"} {
		if n, ok := d[key].(float64); ok {
			parts = append(parts, strconv.Itoa(int(n)))
		}
	}
	return strings.Join(parts, "-")
}
