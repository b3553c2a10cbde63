package catalog

import (
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Search returns the items whose names fuzzily match the query, ordered by
// edit distance to the query so the most relevant entries come first.
func Search(items []Item, query string) []Item {
	query = normalizedName(query)

	matched := lo.Filter(items, func(item Item, _ int) bool {
		return fuzzy.MatchFold(query, item.Name)
	})

	sort.SliceStable(matched, func(a, b int) bool {
		return levenshtein.Distance(query, normalizedName(matched[a].Name)) <
			levenshtein.Distance(query, normalizedName(matched[b].Name))
	})

	return matched
}

// FindClosest returns the single best-matching item for a query, if any match at all.
func FindClosest(items []Item, query string) mo.Option[Item] {
	matched := Search(items, query)
	if len(matched) == 0 {
		return mo.None[Item]()
	}
	return mo.Some(matched[0])
}
