package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/travelguide-web/internal/domain"
	"github.com/travelguide-web/internal/domain/repository"
	"go.uber.org/zap"
)

// placesKey holds the full admin list; every successful mutation deletes it.
const placesKey = "places:list"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) GetPlaces(ctx context.Context) ([]*domain.Place, error) {
	data, err := r.client.Get(ctx, placesKey).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get places from cache", zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var places []*domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Error("Failed to unmarshal cached places", zap.Error(err))
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", placesKey))
	return places, nil
}

func (r *cacheRepository) SetPlaces(ctx context.Context, places []*domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		r.logger.Error("Failed to marshal places", zap.Error(err))
		return fmt.Errorf("marshal places: %w", err)
	}

	if err := r.client.Set(ctx, placesKey, data, ttl).Err(); err != nil {
		r.logger.Error("Failed to set places cache", zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", placesKey), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) InvalidatePlaces(ctx context.Context) error {
	if err := r.client.Del(ctx, placesKey).Err(); err != nil {
		r.logger.Error("Failed to invalidate places cache", zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache invalidated", zap.String("key", placesKey))
	return nil
}
