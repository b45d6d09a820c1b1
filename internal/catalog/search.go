package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is a search hit.
type Match struct {
	Entry Entry
	Score int
}

// searchSource exposes entries to the fuzzy matcher as "id name tags".
type searchSource []Entry

func (s searchSource) String(i int) string {
	e := s[i]
	return e.ID + " " + e.Name + " " + strings.Join(e.Tags, " ")
}

func (s searchSource) Len() int {
	return len(s)
}

// Search ranks entries against query. An empty query returns every entry.
func (c *Catalog) Search(query string) []Match {
	return SearchEntries(c.entries, query)
}

// SearchEntries ranks entries against query, best match first.
func SearchEntries(entries []Entry, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]Match, len(entries))
		for i, e := range entries {
			out[i] = Match{Entry: e}
		}
		return out
	}

	results := fuzzy.FindFrom(strings.ToLower(query), searchSource(entries))
	out := make([]Match, len(results))
	for i, r := range results {
		out[i] = Match{Entry: entries[r.Index], Score: r.Score}
	}
	return out
}
