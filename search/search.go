package search

import (
	"strings"

	"github.com/samber/lo"
)

// MaxResults caps how many hits a single query returns.
const MaxResults = 8

// Kind is the category of a record. It only picks the fallback icon.
type Kind string

const (
	KindAlbum   Kind = "album"
	KindSingle  Kind = "single"
	KindArtist  Kind = "artist"
	KindProject Kind = "project"
	KindPage    Kind = "page"
)

// Kinds lists every valid Kind.
var Kinds = []Kind{KindAlbum, KindSingle, KindArtist, KindProject, KindPage}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return lo.Contains(Kinds, k)
}

// Record is one searchable entry: a site page, a project or an external
// catalog item.
type Record struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Kind       Kind   `json:"kind"`
	Target     string `json:"target"`              // in-site path or absolute URL
	Thumbnail  string `json:"thumbnail,omitempty"` // optional image reference
	IsExternal bool   `json:"is_external"`         // opens Target in a new context
}

// Matches reports whether the lowercased query appears in the title or
// the subtitle of the record.
func (r Record) Matches(lowered string) bool {
	return strings.Contains(strings.ToLower(r.Title), lowered) ||
		strings.Contains(strings.ToLower(r.Subtitle), lowered)
}

type SearchResult struct {
	Err  error
	Hits []Record
}

// The searcher that matches a query against the records it holds.
type Searcher interface {
	Search(query string) SearchResult // Search the records for the given query.
}

// ComputeResults returns the records matching query, in catalog order and
// capped at MaxResults. A blank query yields no results.
func ComputeResults(query string, catalog []Record) []Record {
	if strings.TrimSpace(query) == "" {
		return []Record{}
	}

	lowered := strings.ToLower(query)
	hits := make([]Record, 0, MaxResults)
	for _, r := range catalog {
		if !r.Matches(lowered) {
			continue
		}
		hits = append(hits, r)
		if len(hits) == MaxResults {
			break
		}
	}
	return hits
}

type catalogSearcher struct {
	records []Record
}

// NewSearcher returns a Searcher over a fixed set of records.
func NewSearcher(records []Record) Searcher {
	return catalogSearcher{records: records}
}

func (s catalogSearcher) Search(query string) SearchResult {
	return SearchResult{Hits: ComputeResults(query, s.records)}
}
