// Package catalog holds the fixed reference table of known supplements and
// the enrichment resolver that augments user-entered records with its
// metadata. The table is read-only; iteration order is the tie-break when
// aliases overlap.
package catalog

import (
	"strings"

	"github.com/daniazubel1/suptrack/internal/model"
)

type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Dosage      string   `json:"dosage"`
	BestTime    string   `json:"bestTime"`
	FoodReq     string   `json:"foodReq"`
	Frequency   string   `json:"frequency"`
	Warning     string   `json:"warning"`
	Category    string   `json:"category"`
}

// Entries returns the full reference table in catalog order.
func Entries() []Entry {
	return entries
}

// Lookup finds an entry by case-insensitive, trimmed exact name match.
func Lookup(name string) (Entry, bool) {
	needle := normalize(name)
	for _, e := range entries {
		if strings.ToLower(e.Name) == needle {
			return e, true
		}
	}
	return Entry{}, false
}

// FindByAlias finds the first entry one of whose aliases is contained in the
// candidate name, case-insensitively.
func FindByAlias(name string) (Entry, bool) {
	needle := normalize(name)
	for _, e := range entries {
		for _, alias := range e.Aliases {
			if containsAlias(needle, alias) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Enrich augments sup with catalog metadata when its name matches an entry,
// exact name first, then alias containment. The candidate's own name, dosage,
// timing, notes and id are preserved; on no match sup is returned unchanged.
func Enrich(sup model.Supplement) model.Supplement {
	needle := normalize(sup.Name)
	for _, e := range entries {
		if strings.ToLower(e.Name) == needle {
			return apply(sup, e)
		}
		for _, alias := range e.Aliases {
			if containsAlias(needle, alias) {
				return apply(sup, e)
			}
		}
	}
	return sup
}

func apply(sup model.Supplement, e Entry) model.Supplement {
	sup.Description = e.Description
	sup.Benefits = append([]string(nil), e.Benefits...)
	sup.FoodReq = e.FoodReq
	sup.Warning = e.Warning
	sup.RecommendedTime = e.BestTime
	return sup
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// containsAlias reports whether name contains alias on word boundaries.
// Plain substring containment would let short aliases like "k" match inside
// unrelated words.
func containsAlias(name, alias string) bool {
	if alias == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(name[from:], alias)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(alias)
		if !isWordChar(name, start-1) && !isWordChar(name, end) {
			return true
		}
		from = start + 1
	}
}

func isWordChar(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
