package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/travelguide-web/internal/config"
	"github.com/travelguide-web/internal/domain/repository"
	"github.com/travelguide-web/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPlaceRepositoryForTest creates a place repository backed by the test database
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	handle := postgres.NewHandleForTest(NewDBForTest(db, logger), &config.Config{})
	return postgres.NewPlaceRepository(handle, logger)
}
