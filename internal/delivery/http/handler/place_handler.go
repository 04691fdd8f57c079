package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travelguide-web/internal/domain"
	"github.com/travelguide-web/internal/pkg/errors"
	"github.com/travelguide-web/internal/pkg/utils"
	"github.com/travelguide-web/internal/usecase"
	"github.com/travelguide-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик CRUD-операций каталога мест в админке
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// List - список мест
// @Summary List places
// @Description Returns every place ordered by sort_order (NULLs last) then name. Optional sort/dir re-sort the list by one of the admin table keys.
// @Tags places
// @Produce json
// @Param sort query string false "Sort key" Enums(name, category, status, updated_at)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} utils.SuccessResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /admin/api/places [get]
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	places, err := h.placeUC.ListPlaces(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	if sortParam := c.Query("sort"); sortParam != "" {
		key := domain.ParseSortKey(sortParam)
		dir := domain.ParseSortDirection(c.Query("dir"))
		domain.SortPlaces(places, key, dir)
	}

	return utils.SendSuccess(c, places, &utils.Meta{
		Total: len(places),
	})
}

// Create - создание места
// @Summary Create a place
// @Description Validates the form, normalizes empty strings to NULL and inserts a new row. The cached admin list is invalidated on success.
// @Tags places
// @Accept json
// @Produce json
// @Param place body dto.PlaceForm true "Place form values"
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /admin/api/places [post]
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	var form dto.PlaceForm
	if err := c.BodyParser(&form); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	place, err := h.placeUC.CreatePlace(c.Context(), &form)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, place)
}

// Update - обновление места
// @Summary Update a place
// @Description Overwrites every normalizable field of the row and refreshes updated_at. Unknown ids return 404.
// @Tags places
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param place body dto.PlaceForm true "Place form values"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/places/{id} [put]
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	id, err := parsePlaceID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var form dto.PlaceForm
	if err := c.BodyParser(&form); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	if err := h.placeUC.UpdatePlace(c.Context(), id, &form); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id}, nil)
}

// Delete - удаление места
// @Summary Delete a place
// @Description Hard-deletes the row. Unknown ids return 404.
// @Tags places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/api/places/{id} [delete]
func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePlaceID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.placeUC.DeletePlace(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"id": id}, nil)
}

func parsePlaceID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidPlaceID
	}
	return id, nil
}
