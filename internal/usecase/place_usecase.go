package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/travelguide-web/internal/domain"
	"github.com/travelguide-web/internal/domain/repository"
	"github.com/travelguide-web/internal/pkg/errors"
	"github.com/travelguide-web/internal/pkg/validator"
	"github.com/travelguide-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceUseCase - четыре операции над каталогом мест: list, create, update,
// delete. Каждая мутация сбрасывает закешированный список админки.
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewPlaceUseCase creates the use case. cacheRepo may be nil when Redis is
// not configured; the operations then run uncached.
func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// ListPlaces returns every place in store order: sort_order ascending with
// NULLs last, then name. Cache failures fall through to the store.
func (uc *PlaceUseCase) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPlaces(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("places cache read failed", zap.Error(err))
		}
	}

	places, err := uc.placeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list places", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPlaces(ctx, places, uc.cacheTTL); err != nil {
			uc.logger.Warn("places cache write failed", zap.Error(err))
		}
	}

	return places, nil
}

func (uc *PlaceUseCase) CreatePlace(ctx context.Context, form *dto.PlaceForm) (*domain.Place, error) {
	input, err := uc.normalize(form)
	if err != nil {
		return nil, err
	}

	place, err := uc.placeRepo.Create(ctx, input)
	if err != nil {
		uc.logger.Error("Failed to create place", zap.Error(err))
		return nil, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("Place created", zap.Int64("id", place.ID))
	return place, nil
}

func (uc *PlaceUseCase) UpdatePlace(ctx context.Context, id int64, form *dto.PlaceForm) error {
	input, err := uc.normalize(form)
	if err != nil {
		return err
	}

	if err := uc.placeRepo.Update(ctx, id, input); err != nil {
		uc.logger.Error("Failed to update place", zap.Int64("id", id), zap.Error(err))
		return err
	}

	uc.invalidate(ctx)
	uc.logger.Info("Place updated", zap.Int64("id", id))
	return nil
}

func (uc *PlaceUseCase) DeletePlace(ctx context.Context, id int64) error {
	if err := uc.placeRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete place", zap.Int64("id", id), zap.Error(err))
		return err
	}

	uc.invalidate(ctx)
	uc.logger.Info("Place deleted", zap.Int64("id", id))
	return nil
}

// normalize validates the form as a whole and converts it into store values:
// text fields are trimmed with empty strings collapsed to NULL, booleans get
// their defaults, numeric fields pass through as typed pointers. The report
// enumerates every offending field, flex numbers included.
func (uc *PlaceUseCase) normalize(form *dto.PlaceForm) (repository.PlaceInput, error) {
	details := map[string]interface{}{}
	if err := validator.Validate(form); err != nil {
		fieldErrs := validator.FieldErrors(err)
		if fieldErrs == nil {
			return repository.PlaceInput{}, errors.ErrValidation
		}
		for field, msg := range fieldErrs {
			details[field] = msg
		}
	}

	if form.Latitude.Invalid() {
		details["latitude"] = "must be a number"
	}
	if form.Longitude.Invalid() {
		details["longitude"] = "must be a number"
	}
	if form.SortOrder.Invalid() {
		details["sort_order"] = "must be an integer"
	}

	if len(details) > 0 {
		return repository.PlaceInput{}, errors.ErrValidation.WithDetails(details)
	}

	return repository.PlaceInput{
		GooglePlaceID:    nullableString(form.GooglePlaceID),
		Slug:             nullableString(form.Slug),
		Name:             nullableString(form.Name),
		IsActive:         form.Active(),
		IsFeatured:       form.Featured(),
		CategoryKey:      nullableString(form.CategoryKey),
		SuperCategory:    nullableString(form.SuperCategory),
		Theme:            nullableString(form.Theme),
		Tagline:          nullableString(form.Tagline),
		ShortDescription: nullableString(form.ShortDescription),
		LongDescription:  nullableString(form.LongDescription),
		Address:          nullableString(form.Address),
		Latitude:         form.Latitude.Ptr(),
		Longitude:        form.Longitude.Ptr(),
		PhotoReference:   nullableString(form.PhotoReference),
		PhotoAttribution: nullableString(form.PhotoAttribution),
		BookingURL:       nullableString(form.BookingURL),
		TTSAudioPath:     nullableString(form.TTSAudioPath),
		SortOrder:        form.SortOrder.Ptr(),
	}, nil
}

// invalidate drops the cached admin list. Failures are logged only; the row
// mutation has already committed.
func (uc *PlaceUseCase) invalidate(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidatePlaces(ctx); err != nil {
		uc.logger.Warn("places cache invalidation failed", zap.Error(err))
	}
}

func nullableString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
