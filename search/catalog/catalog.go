// Package catalog holds the compiled-in table of searchable records.
package catalog

import (
	"github.com/realitybuilders/rbew_search/search"
)

// all is built once at init and never written to again.
var all = append(append(make([]search.Record, 0, len(local)+len(external)), local...), external...)

// Local returns the in-site pages and projects in declaration order.
func Local() []search.Record {
	return clone(local)
}

// External returns the Reality Radio Network entries in declaration order.
func External() []search.Record {
	return clone(external)
}

// All returns the local records followed by the external ones.
func All() []search.Record {
	return clone(all)
}

func clone(records []search.Record) []search.Record {
	out := make([]search.Record, len(records))
	copy(out, records)
	return out
}
