package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/offered-places/internal/errs"
	"github.com/deppfellow/offered-places/internal/model/place"
	"github.com/deppfellow/offered-places/internal/repository"
	"github.com/deppfellow/offered-places/internal/server"
	"github.com/deppfellow/offered-places/internal/service"
	"github.com/deppfellow/offered-places/internal/sqlerr"
)

const (
	msgQueryFailed  = "Error while querying the database"
	msgInsertFailed = "Error while inserting the place into the database"
	msgUpdateFailed = "Error while updating the place in the database"
	msgDeleteFailed = "Error while deleting the place from the database"

	msgCreated = "The place has been created successfully"
	msgUpdated = "The place has been updated successfully"
	msgDeleted = "The place has been deleted successfully"
)

// PlaceHandler serves the offered places CRUD routes.
type PlaceHandler struct {
	Handler
	placeService *service.PlaceService
}

func NewPlaceHandler(s *server.Server, placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		Handler:      NewHandler(s),
		placeService: placeService,
	}
}

// ListPlaces returns every place. Store failures are left to the global
// error handler.
func (h *PlaceHandler) ListPlaces(c echo.Context, _ *place.ListPlacesPayload) ([]place.Place, error) {
	return h.placeService.List(c.Request().Context())
}

func (h *PlaceHandler) GetPlace(c echo.Context, req *place.GetPlaceByIDPayload) (*place.Place, error) {
	found, err := h.placeService.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, sqlerr.StoreFailure(msgQueryFailed, err)
	}
	if found == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Place ID: %d does not exist in the database", req.ID), nil)
	}

	return found, nil
}

func (h *PlaceHandler) CreatePlace(c echo.Context, req *place.CreatePlacePayload) (*place.MutationResponse, error) {
	created, err := h.placeService.Save(c.Request().Context(), req.Fields.New())
	if err != nil {
		return nil, sqlerr.StoreFailure(msgInsertFailed, err)
	}

	return &place.MutationResponse{Message: msgCreated, Place: created}, nil
}

// UpdatePlace replaces every mutable field of an existing place. It never
// creates a place.
func (h *PlaceHandler) UpdatePlace(c echo.Context, req *place.UpdatePlacePayload) (*place.MutationResponse, error) {
	ctx := c.Request().Context()

	existing, err := h.placeService.GetByID(ctx, req.ID)
	if err != nil {
		return nil, sqlerr.StoreFailure(msgQueryFailed, err)
	}
	if existing == nil {
		return nil, updateNotFound(req.ID)
	}

	req.Fields.ApplyTo(existing)

	updated, err := h.placeService.Save(ctx, existing)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, updateNotFound(req.ID)
	}
	if err != nil {
		return nil, sqlerr.StoreFailure(msgUpdateFailed, err)
	}

	return &place.MutationResponse{Message: msgUpdated, Place: updated}, nil
}

func updateNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Could not update: place ID: %d does not exist in the database", id), nil)
}

// DeletePlace removes a place. Deleting an absent id succeeds.
func (h *PlaceHandler) DeletePlace(c echo.Context, req *place.DeletePlacePayload) (*place.MessageResponse, error) {
	if err := h.placeService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, sqlerr.StoreFailure(msgDeleteFailed, err)
	}

	return &place.MessageResponse{Message: msgDeleted}, nil
}

// UpdateStatus is the status answered by a successful update. Existing
// clients expect 201 rather than 200.
const UpdateStatus = http.StatusCreated
