// Package filter derives views over the listing collection. Everything here
// is pure: inputs in, matching subset out, no state.
package filter

import (
	"sort"
	"strconv"

	"imovia-backend/internal/domain"
)

// Criteria is the optional constraint set applied to a collection. Fields
// carry the form layer's raw string values; an empty string imposes no
// constraint. All present criteria are ANDed.
type Criteria struct {
	Type     string
	City     string
	MinPrice string
	MaxPrice string
	MinArea  string
	MaxArea  string
}

// Apply returns the listings matching every present criterion, preserving the
// input order. Type and City match exactly (case-sensitive); the numeric
// bounds are inclusive. A numeric criterion that does not parse imposes no
// constraint.
func Apply(listings []domain.Listing, c Criteria) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// Matches reports whether a single listing satisfies every present criterion.
func Matches(l domain.Listing, c Criteria) bool {
	if c.Type != "" && string(l.Type) != c.Type {
		return false
	}
	if c.City != "" && l.City != c.City {
		return false
	}
	if min, ok := parseBound(c.MinPrice); ok && l.Price < min {
		return false
	}
	if max, ok := parseBound(c.MaxPrice); ok && l.Price > max {
		return false
	}
	if min, ok := parseBound(c.MinArea); ok && l.Area < min {
		return false
	}
	if max, ok := parseBound(c.MaxArea); ok && l.Area > max {
		return false
	}
	return true
}

// DistinctCities returns the distinct city values present in the collection,
// sorted ascending. An empty collection yields an empty slice.
func DistinctCities(listings []domain.Listing) []string {
	seen := make(map[string]struct{}, len(listings))
	cities := make([]string, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.City]; ok {
			continue
		}
		seen[l.City] = struct{}{}
		cities = append(cities, l.City)
	}
	sort.Strings(cities)
	return cities
}

func parseBound(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
