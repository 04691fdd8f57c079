package domain

import (
	"sort"
	"strings"
	"time"
)

// Place представляет запись каталога достопримечательностей
type Place struct {
	ID               int64     `json:"id" db:"id"`
	GooglePlaceID    *string   `json:"google_place_id,omitempty" db:"google_place_id"`
	Slug             *string   `json:"slug,omitempty" db:"slug"`
	Name             *string   `json:"name,omitempty" db:"name"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	IsFeatured       bool      `json:"is_featured" db:"is_featured"`
	CategoryKey      *string   `json:"category_key,omitempty" db:"category_key"`
	SuperCategory    *string   `json:"super_category,omitempty" db:"super_category"`
	Theme            *string   `json:"theme,omitempty" db:"theme"`
	Tagline          *string   `json:"tagline,omitempty" db:"tagline"`
	ShortDescription *string   `json:"short_description,omitempty" db:"short_description"`
	LongDescription  *string   `json:"long_description,omitempty" db:"long_description"`
	Address          *string   `json:"address,omitempty" db:"address"`
	Latitude         *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude        *float64  `json:"longitude,omitempty" db:"longitude"`
	PhotoReference   *string   `json:"photo_reference,omitempty" db:"photo_reference"`
	PhotoAttribution *string   `json:"photo_attribution,omitempty" db:"photo_attribution"`
	BookingURL       *string   `json:"booking_url,omitempty" db:"booking_url"`
	TTSAudioPath     *string   `json:"tts_audio_path,omitempty" db:"tts_audio_path"`
	SortOrder        *int      `json:"sort_order,omitempty" db:"sort_order"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// SortKey - ключ сортировки списка мест в админке
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByStatus   SortKey = "status"
	SortByUpdated  SortKey = "updated_at"
)

// SortDirection - направление сортировки
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortKey returns the matching sort key, defaulting to name.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByCategory, SortByStatus, SortByUpdated:
		return SortKey(s)
	default:
		return SortByName
	}
}

// ParseSortDirection returns the matching direction, defaulting to ascending.
func ParseSortDirection(s string) SortDirection {
	if SortDirection(s) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// Toggle returns the follow-up sort for a clicked column header: clicking the
// active key flips the direction, a different key resets to ascending.
func Toggle(activeKey SortKey, activeDir SortDirection, clicked SortKey) (SortKey, SortDirection) {
	if clicked == activeKey {
		if activeDir == SortAsc {
			return clicked, SortDesc
		}
		return clicked, SortAsc
	}
	return clicked, SortAsc
}

// SortPlaces sorts the list in place. String keys compare case-insensitively
// with nil treated as empty, status compares active-last/first as 0/1, and
// updated_at compares as instants with the zero time as the earliest possible
// value. Descending negates the comparator while the stable sort keeps tied
// elements in their current order, so flipping the direction twice restores
// the original order.
func SortPlaces(places []*Place, key SortKey, dir SortDirection) {
	cmp := func(a, b *Place) int {
		switch key {
		case SortByCategory:
			return compareStrings(a.CategoryKey, b.CategoryKey)
		case SortByStatus:
			return boolToInt(a.IsActive) - boolToInt(b.IsActive)
		case SortByUpdated:
			return a.UpdatedAt.Compare(b.UpdatedAt)
		default:
			return compareStrings(a.Name, b.Name)
		}
	}

	sort.SliceStable(places, func(i, j int) bool {
		c := cmp(places[i], places[j])
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareStrings(a, b *string) int {
	var av, bv string
	if a != nil {
		av = strings.ToLower(*a)
	}
	if b != nil {
		bv = strings.ToLower(*b)
	}
	return strings.Compare(av, bv)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
