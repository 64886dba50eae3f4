// Package query implements the search-and-filter engine behind the client and
// job lists: parsing of the search box mini-language, per-entity predicates,
// and composition of independent filter facets into a single pass.
//
// Every function in this package is pure. Filtering never reorders its input
// and never fails; an empty or unusable facet matches everything.
package query

import "strings"

// Field selects which projection of a record a search query targets
type Field string

const (
	// FieldAny is a free-text query over all searchable projections
	FieldAny   Field = ""
	FieldEmail Field = "email"
	FieldTag   Field = "tag"
	FieldCity  Field = "city"
)

var knownFields = map[string]Field{
	"email": FieldEmail,
	"tag":   FieldTag,
	"city":  FieldCity,
}

// SearchQuery is a parsed search box string
type SearchQuery struct {
	Field Field
	// Value is the lowercased term to look for as a substring
	Value string
	// Raw is the term with its original casing, used where a projection is
	// compared without case folding (phone numbers)
	Raw string
}

// IsEmpty reports whether the query matches everything
func (q SearchQuery) IsEmpty() bool {
	return q.Field == FieldAny && q.Raw == ""
}

// ParseSearch parses a search box string.
//
// A string containing ':' is split on the first colon only. If the part
// before it names a known field the rest, trimmed, is the value. Otherwise
// the whole string is a free-text term. Free-text terms are not trimmed.
func ParseSearch(raw string) SearchQuery {
	if raw == "" {
		return SearchQuery{}
	}

	if key, value, ok := strings.Cut(raw, ":"); ok {
		if field, known := knownFields[strings.ToLower(strings.TrimSpace(key))]; known {
			value = strings.TrimSpace(value)
			return SearchQuery{
				Field: field,
				Value: strings.ToLower(value),
				Raw:   value,
			}
		}
	}

	return SearchQuery{
		Field: FieldAny,
		Value: strings.ToLower(raw),
		Raw:   raw,
	}
}

// containsFold reports whether the lowercased haystack contains an already
// lowercased needle
func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
