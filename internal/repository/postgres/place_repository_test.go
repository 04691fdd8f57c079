package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	apperrors "github.com/travelguide-web/internal/pkg/errors"

	"github.com/travelguide-web/internal/domain/repository"
	"github.com/travelguide-web/internal/repository/postgres/testhelpers"
)

// PlaceRepositorySuite tests the place repository with real database
type PlaceRepositorySuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.PlaceRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests
func (s *PlaceRepositorySuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewPlaceRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests
func (s *PlaceRepositorySuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *PlaceRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func (s *PlaceRepositorySuite) fullInput() repository.PlaceInput {
	return repository.PlaceInput{
		GooglePlaceID:    strPtr("ChIJ82ENKDJgHTERIEjiXbIAAQE"),
		Slug:             strPtr("wat-arun"),
		Name:             strPtr("Wat Arun"),
		IsActive:         true,
		IsFeatured:       true,
		CategoryKey:      strPtr("temple"),
		SuperCategory:    strPtr("culture"),
		Theme:            strPtr("riverside"),
		Tagline:          strPtr("Temple of Dawn"),
		ShortDescription: strPtr("Iconic riverside temple."),
		LongDescription:  strPtr("One of Bangkok's most famous landmarks on the Chao Phraya river."),
		Address:          strPtr("158 Thanon Wang Doem, Bangkok"),
		Latitude:         floatPtr(13.7437),
		Longitude:        floatPtr(100.4888),
		PhotoReference:   strPtr("photo-ref-1"),
		PhotoAttribution: strPtr("Photo by a traveler"),
		BookingURL:       strPtr("https://example.com/wat-arun"),
		TTSAudioPath:     strPtr("audio/wat-arun.mp3"),
		SortOrder:        intPtr(1),
	}
}

// ============================================================================
// Test Create
// ============================================================================

func (s *PlaceRepositorySuite) TestCreate_FullInput() {
	place, err := s.repo.Create(s.ctx, s.fullInput())
	s.NoError(err)
	s.Require().NotNil(place)

	s.Positive(place.ID)
	s.Equal("Wat Arun", *place.Name)
	s.Equal("wat-arun", *place.Slug)
	s.True(place.IsActive)
	s.True(place.IsFeatured)
	s.Equal(13.7437, *place.Latitude)
	s.Equal(100.4888, *place.Longitude)
	s.Equal(1, *place.SortOrder)
	s.False(place.CreatedAt.IsZero())
	s.False(place.UpdatedAt.IsZero())
}

func (s *PlaceRepositorySuite) TestCreate_AllNullsExceptFlags() {
	place, err := s.repo.Create(s.ctx, repository.PlaceInput{IsActive: true})
	s.NoError(err)
	s.Require().NotNil(place)

	s.Nil(place.Name)
	s.Nil(place.Slug)
	s.Nil(place.GooglePlaceID)
	s.Nil(place.Latitude)
	s.Nil(place.SortOrder)
	s.True(place.IsActive)
	s.False(place.IsFeatured)
}

func (s *PlaceRepositorySuite) TestCreate_DuplicateSlug() {
	_, err := s.repo.Create(s.ctx, s.fullInput())
	s.Require().NoError(err)

	dup := s.fullInput()
	dup.GooglePlaceID = strPtr("another-google-id")
	_, err = s.repo.Create(s.ctx, dup)

	s.Require().Error(err)
	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal("DUPLICATE_PLACE", appErr.Code)

	// the failed insert must not leave a second row behind
	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Len(places, 1)
}

func (s *PlaceRepositorySuite) TestCreate_DuplicateGooglePlaceID() {
	_, err := s.repo.Create(s.ctx, s.fullInput())
	s.Require().NoError(err)

	dup := s.fullInput()
	dup.Slug = strPtr("another-slug")
	_, err = s.repo.Create(s.ctx, dup)

	s.Require().Error(err)
	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal("DUPLICATE_PLACE", appErr.Code)
}

// ============================================================================
// Test List
// ============================================================================

func (s *PlaceRepositorySuite) TestList_Empty() {
	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.NotNil(places)
	s.Empty(places)
}

func (s *PlaceRepositorySuite) TestList_OrderBySortOrderNullsLast() {
	third := repository.PlaceInput{Name: strPtr("Alpha No Order"), IsActive: true}
	first := repository.PlaceInput{Name: strPtr("Zeta"), SortOrder: intPtr(1), IsActive: true}
	second := repository.PlaceInput{Name: strPtr("Beta"), SortOrder: intPtr(5), IsActive: true}

	for _, input := range []repository.PlaceInput{third, first, second} {
		_, err := s.repo.Create(s.ctx, input)
		s.Require().NoError(err)
	}

	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Require().Len(places, 3)

	s.Equal("Zeta", *places[0].Name)
	s.Equal("Beta", *places[1].Name)
	s.Equal("Alpha No Order", *places[2].Name)
}

func (s *PlaceRepositorySuite) TestList_SameSortOrderFallsBackToName() {
	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		_, err := s.repo.Create(s.ctx, repository.PlaceInput{
			Name:      strPtr(name),
			SortOrder: intPtr(7),
			IsActive:  true,
		})
		s.Require().NoError(err)
	}

	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Require().Len(places, 3)

	s.Equal("Alpha", *places[0].Name)
	s.Equal("Bravo", *places[1].Name)
	s.Equal("Charlie", *places[2].Name)
}

// ============================================================================
// Test Update
// ============================================================================

func (s *PlaceRepositorySuite) TestUpdate_OverwritesAllFields() {
	place, err := s.repo.Create(s.ctx, s.fullInput())
	s.Require().NoError(err)

	update := repository.PlaceInput{
		Name:     strPtr("Wat Arun Ratchawararam"),
		Slug:     strPtr("wat-arun"),
		IsActive: false,
	}
	err = s.repo.Update(s.ctx, place.ID, update)
	s.NoError(err)

	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Require().Len(places, 1)

	got := places[0]
	s.Equal("Wat Arun Ratchawararam", *got.Name)
	s.False(got.IsActive)
	// fields absent from the input are overwritten with NULL
	s.Nil(got.CategoryKey)
	s.Nil(got.Latitude)
	s.Nil(got.BookingURL)
}

func (s *PlaceRepositorySuite) TestUpdate_RefreshesUpdatedAt() {
	place, err := s.repo.Create(s.ctx, s.fullInput())
	s.Require().NoError(err)

	time.Sleep(50 * time.Millisecond)

	err = s.repo.Update(s.ctx, place.ID, s.fullInput())
	s.NoError(err)

	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Require().Len(places, 1)
	s.True(places[0].UpdatedAt.After(place.UpdatedAt))
	s.Equal(place.CreatedAt.Unix(), places[0].CreatedAt.Unix())
}

func (s *PlaceRepositorySuite) TestUpdate_NotFound() {
	err := s.repo.Update(s.ctx, 99999, s.fullInput())
	s.Require().Error(err)

	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal("PLACE_NOT_FOUND", appErr.Code)
}

// ============================================================================
// Test Delete
// ============================================================================

func (s *PlaceRepositorySuite) TestDelete_RemovesRow() {
	place, err := s.repo.Create(s.ctx, s.fullInput())
	s.Require().NoError(err)

	err = s.repo.Delete(s.ctx, place.ID)
	s.NoError(err)

	places, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Empty(places)
}

func (s *PlaceRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, 99999)
	s.Require().Error(err)

	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal("PLACE_NOT_FOUND", appErr.Code)
}

func TestPlaceRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlaceRepositorySuite))
}
