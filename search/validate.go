package search

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// ValidationError lists every integrity problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the catalog invariants: unique ids, known kinds, and
// targets that agree with IsExternal.
func Validate(catalog []Record) error {
	var problems []string

	byID := lo.GroupBy(catalog, func(r Record) string { return r.ID })
	for _, r := range catalog {
		if r.ID == "" {
			problems = append(problems, fmt.Sprintf("record %q has no id", r.Title))
		} else if n := len(byID[r.ID]); n > 1 {
			problems = append(problems, fmt.Sprintf("id %q used by %d records", r.ID, n))
			delete(byID, r.ID)
		}
		if r.Title == "" {
			problems = append(problems, fmt.Sprintf("%s: empty title", r.ID))
		}
		if !r.Kind.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown kind %q", r.ID, r.Kind))
		}
		if err := checkTarget(r); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", r.ID, err))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func checkTarget(r Record) error {
	if r.IsExternal {
		u, err := url.Parse(r.Target)
		if err != nil {
			return fmt.Errorf("parse target: %w", err)
		}
		if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("external target %q is not an absolute http(s) URL", r.Target)
		}
		return nil
	}

	if !strings.HasPrefix(r.Target, "/") || strings.HasPrefix(r.Target, "//") {
		return fmt.Errorf("local target %q is not an in-site path", r.Target)
	}
	if strings.Contains(r.Target, "://") {
		return fmt.Errorf("local target %q looks like a URL", r.Target)
	}
	return nil
}
