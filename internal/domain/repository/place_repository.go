package repository

import (
	"context"

	"github.com/travelguide-web/internal/domain"
)

// PlaceInput - нормализованные значения формы, готовые к записи в хранилище
type PlaceInput struct {
	GooglePlaceID    *string
	Slug             *string
	Name             *string
	IsActive         bool
	IsFeatured       bool
	CategoryKey      *string
	SuperCategory    *string
	Theme            *string
	Tagline          *string
	ShortDescription *string
	LongDescription  *string
	Address          *string
	Latitude         *float64
	Longitude        *float64
	PhotoReference   *string
	PhotoAttribution *string
	BookingURL       *string
	TTSAudioPath     *string
	SortOrder        *int
}

// PlaceRepository определяет методы для работы с таблицей places
type PlaceRepository interface {
	// List возвращает все записи, отсортированные по sort_order (NULL в конце),
	// затем по имени
	List(ctx context.Context) ([]*domain.Place, error)

	// Create вставляет новую запись; id и таймстемпы назначает хранилище
	Create(ctx context.Context, input PlaceInput) (*domain.Place, error)

	// Update перезаписывает все нормализуемые поля записи и обновляет updated_at
	Update(ctx context.Context, id int64, input PlaceInput) error

	// Delete удаляет запись навсегда
	Delete(ctx context.Context, id int64) error
}
