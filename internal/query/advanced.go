package query

import (
	"strings"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// MatchesClientAdvanced reports whether the client passes every advanced
// facet. Facts come from a ClientIndex built over the same data set.
func MatchesClientAdvanced(c *domain.Client, f domain.ClientAdvancedFilters, facts ClientFacts) bool {
	if f.Status != "" && f.Status != domain.FilterAll && string(c.Status) != f.Status {
		return false
	}
	if f.BalanceStatus != "" && f.BalanceStatus != domain.BalanceStatusAll && facts.BalanceStatus != f.BalanceStatus {
		return false
	}
	if len(f.Tags) > 0 && !anyTagIn(c.Tags, f.Tags) {
		return false
	}
	if len(f.ZipCodes) > 0 && !anyZipIn(c.Addresses, f.ZipCodes) {
		return false
	}
	if len(f.StaffIDs) > 0 && !anyIn(facts.StaffIDs, toSet(f.StaffIDs)) {
		return false
	}
	if !f.LastServiceRange.IsZero() && !InRange(c.LastService, f.LastServiceRange) {
		return false
	}
	if !f.NextJobRange.IsZero() && !InRange(facts.NextJobDate, f.NextJobRange) {
		return false
	}
	return true
}

// FilterClientsAdvanced composes the type filter, the search string and the
// advanced facets into one pass over the clients. Input order is kept.
func FilterClientsAdvanced(clients []domain.Client, q domain.ClientQuery, idx ClientIndex) []domain.Client {
	search := ParseSearch(q.Search)
	return collect(clients, func(c *domain.Client) bool {
		return MatchesClientType(c, q.Type) &&
			MatchesClientAdvanced(c, q.Advanced, idx.Facts(c.ID)) &&
			MatchesClient(c, search)
	})
}

func anyTagIn(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if strings.EqualFold(t, w) {
				return true
			}
		}
	}
	return false
}

func anyZipIn(addresses []domain.Address, zips []string) bool {
	for _, addr := range addresses {
		for _, z := range zips {
			if addr.ZipCode == strings.TrimSpace(z) {
				return true
			}
		}
	}
	return false
}
