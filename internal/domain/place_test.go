package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/travelguide-web/internal/domain"
)

func str(v string) *string { return &v }

func place(name, category string, active bool, updated time.Time) *domain.Place {
	p := &domain.Place{IsActive: active, UpdatedAt: updated}
	if name != "" {
		p.Name = str(name)
	}
	if category != "" {
		p.CategoryKey = str(category)
	}
	return p
}

func names(places []*domain.Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		if p.Name != nil {
			out[i] = *p.Name
		}
	}
	return out
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want domain.SortKey
	}{
		{"name", domain.SortByName},
		{"category", domain.SortByCategory},
		{"status", domain.SortByStatus},
		{"updated_at", domain.SortByUpdated},
		{"", domain.SortByName},
		{"garbage", domain.SortByName},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseSortKey(tt.in), "input %q", tt.in)
	}
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, domain.SortAsc, domain.ParseSortDirection("asc"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortDirection("desc"))
	assert.Equal(t, domain.SortAsc, domain.ParseSortDirection(""))
	assert.Equal(t, domain.SortAsc, domain.ParseSortDirection("DESC"))
}

func TestToggle(t *testing.T) {
	// clicking the active column flips the direction
	key, dir := domain.Toggle(domain.SortByName, domain.SortAsc, domain.SortByName)
	assert.Equal(t, domain.SortByName, key)
	assert.Equal(t, domain.SortDesc, dir)

	key, dir = domain.Toggle(domain.SortByName, domain.SortDesc, domain.SortByName)
	assert.Equal(t, domain.SortByName, key)
	assert.Equal(t, domain.SortAsc, dir)

	// clicking a different column resets to ascending
	key, dir = domain.Toggle(domain.SortByName, domain.SortDesc, domain.SortByUpdated)
	assert.Equal(t, domain.SortByUpdated, key)
	assert.Equal(t, domain.SortAsc, dir)
}

func TestSortPlaces_ByNameCaseInsensitive(t *testing.T) {
	now := time.Now()
	places := []*domain.Place{
		place("banana", "", true, now),
		place("Apple", "", true, now),
		place("cherry", "", true, now),
	}

	domain.SortPlaces(places, domain.SortByName, domain.SortAsc)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(places))

	domain.SortPlaces(places, domain.SortByName, domain.SortDesc)
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, names(places))
}

func TestSortPlaces_NilNameSortsAsEmpty(t *testing.T) {
	now := time.Now()
	places := []*domain.Place{
		place("Beta", "", true, now),
		place("", "", true, now),
		place("Alpha", "", true, now),
	}

	domain.SortPlaces(places, domain.SortByName, domain.SortAsc)
	assert.Equal(t, []string{"", "Alpha", "Beta"}, names(places))
}

func TestSortPlaces_ByCategory(t *testing.T) {
	now := time.Now()
	places := []*domain.Place{
		place("a", "temple", true, now),
		place("b", "beach", true, now),
		place("c", "", true, now),
	}

	domain.SortPlaces(places, domain.SortByCategory, domain.SortAsc)
	assert.Equal(t, []string{"c", "b", "a"}, names(places))
}

func TestSortPlaces_ByStatus(t *testing.T) {
	now := time.Now()
	places := []*domain.Place{
		place("active-one", "", true, now),
		place("inactive", "", false, now),
		place("active-two", "", true, now),
	}

	domain.SortPlaces(places, domain.SortByStatus, domain.SortAsc)
	// inactive first ascending, ties keep their relative order
	assert.Equal(t, []string{"inactive", "active-one", "active-two"}, names(places))

	domain.SortPlaces(places, domain.SortByStatus, domain.SortDesc)
	// ties keep their current order when the direction flips
	assert.Equal(t, []string{"active-one", "active-two", "inactive"}, names(places))
}

func TestSortPlaces_ByUpdatedZeroTimeFirst(t *testing.T) {
	now := time.Now()
	places := []*domain.Place{
		place("recent", "", true, now),
		place("never", "", true, time.Time{}),
		place("older", "", true, now.Add(-time.Hour)),
	}

	domain.SortPlaces(places, domain.SortByUpdated, domain.SortAsc)
	assert.Equal(t, []string{"never", "older", "recent"}, names(places))
}

func TestSortPlaces_DoubleFlipRestoresOrder(t *testing.T) {
	now := time.Now()
	places := []*domain.Place{
		place("b-1", "beach", true, now),
		place("a", "temple", true, now),
		place("b-2", "beach", true, now),
		place("b-3", "beach", true, now),
	}

	domain.SortPlaces(places, domain.SortByCategory, domain.SortAsc)
	asc := names(places)
	assert.Equal(t, []string{"b-1", "b-2", "b-3", "a"}, asc)

	domain.SortPlaces(places, domain.SortByCategory, domain.SortDesc)
	assert.Equal(t, []string{"a", "b-1", "b-2", "b-3"}, names(places))

	domain.SortPlaces(places, domain.SortByCategory, domain.SortAsc)
	assert.Equal(t, asc, names(places))
}

func TestSortPlaces_Empty(t *testing.T) {
	var places []*domain.Place
	assert.NotPanics(t, func() {
		domain.SortPlaces(places, domain.SortByName, domain.SortDesc)
	})
}
