package repository

import (
	"context"
	"time"

	"github.com/travelguide-web/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// GetPlaces получает закешированный список мест; (nil, nil) при промахе
	GetPlaces(ctx context.Context) ([]*domain.Place, error)

	// SetPlaces сохраняет список мест с TTL
	SetPlaces(ctx context.Context, places []*domain.Place, ttl time.Duration) error

	// InvalidatePlaces сбрасывает закешированный список после мутации
	InvalidatePlaces(ctx context.Context) error
}
