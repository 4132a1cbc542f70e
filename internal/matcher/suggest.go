// file: internal/matcher/suggest.go
// version: 1.0.0
// guid: 8f6958a0-7aa2-45c8-b07c-22fb78fd2255

package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// Suggestion is a candidate author with its edit distance from the query.
type Suggestion struct {
	Author   string
	Distance int
}

// SuggestAuthors returns up to limit known authors that look like query, best
// first. An author matches when the query is a case-insensitive subsequence of
// it ("tolk" -> "J.R.R. Tolkien") or when it is within a small edit distance
// ("Author 3" -> "Author 1"). Exact matches are not suggested. A limit <= 0
// returns every match.
func SuggestAuthors(query string, authors []string, limit int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" || len(authors) == 0 {
		return nil
	}

	candidates := unique(authors)
	best := make(map[string]int, len(candidates))
	consider := func(author string, distance int) {
		if author == query {
			return
		}
		if prev, ok := best[author]; !ok || distance < prev {
			best[author] = distance
		}
	}

	for _, rank := range fuzzy.RankFindFold(query, candidates) {
		consider(rank.Target, rank.Distance)
	}

	folder := cases.Fold()
	foldedQuery := folder.String(query)
	maxDistance := typoBudget(query)
	for _, author := range candidates {
		d := fuzzy.LevenshteinDistance(foldedQuery, folder.String(author))
		if d <= maxDistance {
			consider(author, d)
		}
	}

	suggestions := make([]Suggestion, 0, len(best))
	for author, distance := range best {
		suggestions = append(suggestions, Suggestion{Author: author, Distance: distance})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Author < suggestions[j].Author
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// typoBudget allows roughly one edit per three characters, at least one.
func typoBudget(query string) int {
	n := utf8.RuneCountInString(query) / 3
	if n < 1 {
		return 1
	}
	return n
}

func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
