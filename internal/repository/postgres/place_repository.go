package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/travelguide-web/internal/domain"
	"github.com/travelguide-web/internal/domain/repository"
	apperrors "github.com/travelguide-web/internal/pkg/errors"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type placeRepository struct {
	handle *Handle
	logger *zap.Logger
}

// NewPlaceRepository создает новый экземпляр place repository
func NewPlaceRepository(handle *Handle, logger *zap.Logger) repository.PlaceRepository {
	return &placeRepository{
		handle: handle,
		logger: logger,
	}
}

const placeColumns = `
	id, google_place_id, slug, name, is_active, is_featured,
	category_key, super_category, theme, tagline,
	short_description, long_description, address,
	latitude, longitude, photo_reference, photo_attribution,
	booking_url, tts_audio_path, sort_order, created_at, updated_at`

func (r *placeRepository) List(ctx context.Context) ([]*domain.Place, error) {
	db, err := r.handle.Get(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + placeColumns + `
		FROM places
		ORDER BY sort_order ASC NULLS LAST, name ASC NULLS LAST, id ASC
	`

	places := []*domain.Place{}
	if err := db.SelectContext(ctx, &places, query); err != nil {
		r.logger.Error("failed to list places", zap.Error(err))
		return nil, r.storeError(err)
	}

	return places, nil
}

func (r *placeRepository) Create(ctx context.Context, input repository.PlaceInput) (*domain.Place, error) {
	db, err := r.handle.Get(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO places (
			google_place_id, slug, name, is_active, is_featured,
			category_key, super_category, theme, tagline,
			short_description, long_description, address,
			latitude, longitude, photo_reference, photo_attribution,
			booking_url, tts_audio_path, sort_order
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, $19
		)
		RETURNING ` + placeColumns

	var place domain.Place
	err = db.GetContext(ctx, &place, query,
		input.GooglePlaceID, input.Slug, input.Name, input.IsActive, input.IsFeatured,
		input.CategoryKey, input.SuperCategory, input.Theme, input.Tagline,
		input.ShortDescription, input.LongDescription, input.Address,
		input.Latitude, input.Longitude, input.PhotoReference, input.PhotoAttribution,
		input.BookingURL, input.TTSAudioPath, input.SortOrder,
	)
	if err != nil {
		r.logger.Error("failed to create place", zap.Error(err))
		return nil, r.storeError(err)
	}

	return &place, nil
}

func (r *placeRepository) Update(ctx context.Context, id int64, input repository.PlaceInput) error {
	db, err := r.handle.Get(ctx)
	if err != nil {
		return err
	}

	query := `
		UPDATE places SET
			google_place_id = $1, slug = $2, name = $3,
			is_active = $4, is_featured = $5,
			category_key = $6, super_category = $7, theme = $8, tagline = $9,
			short_description = $10, long_description = $11, address = $12,
			latitude = $13, longitude = $14,
			photo_reference = $15, photo_attribution = $16,
			booking_url = $17, tts_audio_path = $18, sort_order = $19,
			updated_at = now()
		WHERE id = $20
	`

	res, err := db.ExecContext(ctx, query,
		input.GooglePlaceID, input.Slug, input.Name,
		input.IsActive, input.IsFeatured,
		input.CategoryKey, input.SuperCategory, input.Theme, input.Tagline,
		input.ShortDescription, input.LongDescription, input.Address,
		input.Latitude, input.Longitude,
		input.PhotoReference, input.PhotoAttribution,
		input.BookingURL, input.TTSAudioPath, input.SortOrder,
		id,
	)
	if err != nil {
		r.logger.Error("failed to update place", zap.Int64("id", id), zap.Error(err))
		return r.storeError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.storeError(err)
	}
	if affected == 0 {
		return apperrors.ErrPlaceNotFound
	}

	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.handle.Get(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete place", zap.Int64("id", id), zap.Error(err))
		return r.storeError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.storeError(err)
	}
	if affected == 0 {
		return apperrors.ErrPlaceNotFound
	}

	return nil
}

// storeError maps driver failures onto the error taxonomy. Unique violations
// on slug/google_place_id become a conflict, everything else is an opaque
// store error with the driver message attached. Both pgx and lib/pq error
// types are handled because tests connect through the pq driver.
func (r *placeRepository) storeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicatePlace.WithDetails(map[string]interface{}{
				"constraint": pgErr.ConstraintName,
			})
		}
		return apperrors.ErrDatabaseError.WithMessage(fmt.Sprintf("Database operation failed: %s", pgErr.Message))
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) == uniqueViolation {
			return apperrors.ErrDuplicatePlace.WithDetails(map[string]interface{}{
				"constraint": pqErr.Constraint,
			})
		}
		return apperrors.ErrDatabaseError.WithMessage(fmt.Sprintf("Database operation failed: %s", pqErr.Message))
	}

	return apperrors.ErrDatabaseError.WithMessage(fmt.Sprintf("Database operation failed: %v", err))
}
