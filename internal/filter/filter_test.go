package filter

import (
	"testing"

	"imovia-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{ID: "l1", Type: domain.PropertyTypeApartment, City: "São Paulo", Price: 450000, Area: 75},
		{ID: "l2", Type: domain.PropertyTypeHouse, City: "Rio de Janeiro", Price: 980000, Area: 220},
		{ID: "l3", Type: domain.PropertyTypeLand, City: "Belo Horizonte", Price: 250000, Area: 500},
	}
}

func ids(listings []domain.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestApply_NoCriteria(t *testing.T) {
	got := Apply(sampleListings(), Criteria{})
	assert.Equal(t, []string{"l1", "l2", "l3"}, ids(got))
}

func TestApply_MinPriceScenario(t *testing.T) {
	got := Apply(sampleListings(), Criteria{MinPrice: "300000"})
	assert.Equal(t, []string{"l1", "l2"}, ids(got))
}

func TestApply_TypeExactMatch(t *testing.T) {
	got := Apply(sampleListings(), Criteria{Type: "House"})
	assert.Equal(t, []string{"l2"}, ids(got))
}

func TestApply_CityCaseSensitive(t *testing.T) {
	assert.Equal(t, []string{"l1"}, ids(Apply(sampleListings(), Criteria{City: "São Paulo"})))
	assert.Empty(t, Apply(sampleListings(), Criteria{City: "são paulo"}))
}

func TestApply_BoundsAreInclusive(t *testing.T) {
	got := Apply(sampleListings(), Criteria{MinPrice: "450000", MaxPrice: "450000"})
	assert.Equal(t, []string{"l1"}, ids(got))

	got = Apply(sampleListings(), Criteria{MinArea: "220", MaxArea: "500"})
	assert.Equal(t, []string{"l2", "l3"}, ids(got))
}

func TestApply_CriteriaAreANDed(t *testing.T) {
	got := Apply(sampleListings(), Criteria{Type: "House", City: "São Paulo"})
	assert.Empty(t, got)

	got = Apply(sampleListings(), Criteria{City: "Rio de Janeiro", MinPrice: "500000"})
	assert.Equal(t, []string{"l2"}, ids(got))
}

func TestApply_InvalidNumberImposesNoConstraint(t *testing.T) {
	got := Apply(sampleListings(), Criteria{MinPrice: "abc"})
	assert.Equal(t, []string{"l1", "l2", "l3"}, ids(got))
}

func TestApply_SoundAndComplete(t *testing.T) {
	all := sampleListings()
	criteria := []Criteria{
		{},
		{Type: "Apartment"},
		{MinPrice: "300000", MaxArea: "250"},
		{City: "Belo Horizonte", MinArea: "400"},
		{MaxPrice: "100000"},
	}
	for _, c := range criteria {
		got := Apply(all, c)
		matched := make(map[string]bool, len(got))
		for _, l := range got {
			matched[l.ID] = true
			assert.True(t, Matches(l, c), "result contains non-matching listing %s", l.ID)
		}
		for _, l := range all {
			if !matched[l.ID] {
				assert.False(t, Matches(l, c), "matching listing %s missing from result", l.ID)
			}
		}
	}
}

func TestDistinctCities_SortedAndDeduped(t *testing.T) {
	listings := append(sampleListings(), domain.Listing{ID: "l4", City: "São Paulo"})
	got := DistinctCities(listings)
	require.Equal(t, []string{"Belo Horizonte", "Rio de Janeiro", "São Paulo"}, got)
}

func TestDistinctCities_Empty(t *testing.T) {
	assert.Empty(t, DistinctCities(nil))
}
