package query

import (
	"strings"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// MatchesClient reports whether the client satisfies the parsed search query.
//
// Free text matches the name, any contact name, email or phone, any address
// street and any tag. Phone numbers are compared as typed, without case
// folding or digit normalization. Field queries only look at their field.
func MatchesClient(c *domain.Client, q SearchQuery) bool {
	if q.IsEmpty() {
		return true
	}

	switch q.Field {
	case FieldEmail:
		for _, contact := range c.Contacts {
			if containsFold(contact.Email, q.Value) {
				return true
			}
		}
		return false
	case FieldTag:
		return anyTagContains(c.Tags, q.Value)
	case FieldCity:
		for _, addr := range c.Addresses {
			if containsFold(addr.City, q.Value) {
				return true
			}
		}
		return false
	}

	if containsFold(c.Name, q.Value) {
		return true
	}
	for _, contact := range c.Contacts {
		if containsFold(contact.Name, q.Value) ||
			containsFold(contact.Email, q.Value) ||
			strings.Contains(contact.Phone, q.Raw) {
			return true
		}
	}
	for _, addr := range c.Addresses {
		if containsFold(addr.Street, q.Value) {
			return true
		}
	}
	return anyTagContains(c.Tags, q.Value)
}

func anyTagContains(tags []string, lowerValue string) bool {
	for _, tag := range tags {
		if containsFold(tag, lowerValue) {
			return true
		}
	}
	return false
}

// MatchesClientType reports whether the client is of the given type.
// An empty type or "all" matches every client.
func MatchesClientType(c *domain.Client, filterType string) bool {
	if filterType == "" || filterType == domain.FilterAll {
		return true
	}
	return string(c.Type) == filterType
}

// FilterClients returns the clients matching both the type filter and the
// search string, in their original order.
func FilterClients(clients []domain.Client, filterType, searchTerm string) []domain.Client {
	q := ParseSearch(searchTerm)
	return collect(clients, func(c *domain.Client) bool {
		return MatchesClientType(c, filterType) && MatchesClient(c, q)
	})
}

// collect runs a predicate over the records in one pass and keeps matches
// in input order. The result is never nil.
func collect[T any](records []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
