package query

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/tidyhome/dashboard-api/internal/domain"
)

// MinFuzzyScore is the similarity below which no best match is reported
const MinFuzzyScore = 0.4

// FuzzyMatch is the outcome of a best-match search
type FuzzyMatch struct {
	Client *domain.Client
	Score  float64
}

// BestClientMatch finds the client whose name best matches a loosely typed
// term. Handles typos, prefixes and email addresses, where the domain's first
// label is compared with the client name ("anna@abccorp.com" finds "ABC Corp").
// The earliest client wins ties. ok is false when nothing scores at least
// MinFuzzyScore.
func BestClientMatch(clients []domain.Client, term string) (FuzzyMatch, bool) {
	needle := normalizeName(term)
	if at := strings.LastIndex(term, "@"); at >= 0 {
		domainPart := term[at+1:]
		if dot := strings.Index(domainPart, "."); dot > 0 {
			domainPart = domainPart[:dot]
		}
		needle = normalizeName(domainPart)
	}
	if needle == "" {
		return FuzzyMatch{}, false
	}

	var best FuzzyMatch
	for i := range clients {
		score := nameSimilarity(needle, normalizeName(clients[i].Name))
		if score > best.Score {
			best = FuzzyMatch{Client: &clients[i], Score: score}
		}
	}
	if best.Client == nil || best.Score < MinFuzzyScore {
		return FuzzyMatch{}, false
	}
	return best, true
}

func nameSimilarity(needle, name string) float64 {
	if name == "" {
		return 0
	}
	if needle == name {
		return 1
	}
	if strings.HasPrefix(name, needle) {
		return 0.9
	}
	if strings.Contains(name, needle) {
		return 0.8
	}
	dist := levenshtein.ComputeDistance(needle, name)
	// ComputeDistance counts runes, so lengths must too
	longest := utf8.RuneCountInString(name)
	if n := utf8.RuneCountInString(needle); n > longest {
		longest = n
	}
	return 0.75 * (1 - float64(dist)/float64(longest))
}

// normalizeName lowercases and drops everything but letters and digits
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 127 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
