package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PlaceForm - значения формы места, как их прислала админка.
// Числовые поля принимают как числа, так и числовые строки; пустая строка
// означает "нет значения". Нечисловой ввод не роняет декодирование: flex-тип
// запоминает его как некорректный, и нормализация включает поле в общий
// пофильдовый отчет об ошибках валидации.
type PlaceForm struct {
	GooglePlaceID    *string   `json:"google_place_id" validate:"omitempty,max=255"`
	Slug             *string   `json:"slug" validate:"omitempty,max=255"`
	Name             *string   `json:"name" validate:"omitempty,max=255"`
	IsActive         *bool     `json:"is_active"`
	IsFeatured       *bool     `json:"is_featured"`
	CategoryKey      *string   `json:"category_key" validate:"omitempty,max=255"`
	SuperCategory    *string   `json:"super_category" validate:"omitempty,max=255"`
	Theme            *string   `json:"theme" validate:"omitempty,max=255"`
	Tagline          *string   `json:"tagline" validate:"omitempty,max=255"`
	ShortDescription *string   `json:"short_description"`
	LongDescription  *string   `json:"long_description"`
	Address          *string   `json:"address"`
	Latitude         FlexFloat `json:"latitude"`
	Longitude        FlexFloat `json:"longitude"`
	PhotoReference   *string   `json:"photo_reference"`
	PhotoAttribution *string   `json:"photo_attribution"`
	BookingURL       *string   `json:"booking_url" validate:"omitempty,max=255,url"`
	TTSAudioPath     *string   `json:"tts_audio_path" validate:"omitempty,max=255"`
	SortOrder        FlexInt   `json:"sort_order"`
}

// Active applies the default: a place is active unless the form says otherwise.
func (f *PlaceForm) Active() bool {
	if f.IsActive == nil {
		return true
	}
	return *f.IsActive
}

// Featured defaults to false when absent.
func (f *PlaceForm) Featured() bool {
	if f.IsFeatured == nil {
		return false
	}
	return *f.IsFeatured
}

// FlexFloat - опциональное число с плавающей точкой, принимающее числовой
// или строковый JSON-ввод
type FlexFloat struct {
	value   *float64
	invalid bool
}

func NewFlexFloat(v float64) FlexFloat {
	return FlexFloat{value: &v}
}

func (f FlexFloat) Ptr() *float64 {
	return f.value
}

// Invalid reports whether the submitted value could not be read as a number.
func (f FlexFloat) Invalid() bool {
	return f.invalid
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(*f.value, 'f', -1, 64)), nil
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.value = nil
	f.invalid = false

	raw, empty, err := flexRaw(data)
	if err != nil {
		f.invalid = true
		return nil
	}
	if empty {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.invalid = true
		return nil
	}

	f.value = &v
	return nil
}

// FlexInt - опциональное целое, принимающее числовой или строковый JSON-ввод
type FlexInt struct {
	value   *int
	invalid bool
}

func NewFlexInt(v int) FlexInt {
	return FlexInt{value: &v}
}

func (f FlexInt) Ptr() *int {
	return f.value
}

// Invalid reports whether the submitted value could not be read as an integer.
func (f FlexInt) Invalid() bool {
	return f.invalid
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(*f.value)), nil
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.value = nil
	f.invalid = false

	raw, empty, err := flexRaw(data)
	if err != nil {
		f.invalid = true
		return nil
	}
	if empty {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.invalid = true
		return nil
	}

	i := int(v)
	f.value = &i
	return nil
}

// flexRaw unwraps the JSON token: null and the empty string both mean unset,
// a quoted numeric string is unquoted, anything else is returned as-is.
func flexRaw(data []byte) (raw string, empty bool, err error) {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return "", true, nil
	}

	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return "", false, fmt.Errorf("invalid number %s", s)
		}
		s = strings.TrimSpace(unquoted)
	}

	if s == "" {
		return "", true, nil
	}
	return s, false, nil
}
