package place

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/offered-places/internal/validation"
)

// ListPlacesPayload carries no input; it exists so listing goes through the
// same handler pipeline as the other routes.
type ListPlacesPayload struct{}

func (p *ListPlacesPayload) Validate() error {
	return nil
}

// GetPlaceByIDPayload identifies a place by its path id.
type GetPlaceByIDPayload struct {
	ID int64 `json:"-" validate:"min=1"`
}

func (p *GetPlaceByIDPayload) BindPath(b *echo.ValueBinder) error {
	return b.Int64("id", &p.ID).BindError()
}

func (p *GetPlaceByIDPayload) Validate() error {
	return validation.ValidateStruct(p)
}

// CreatePlacePayload is the body of a create request. It has no id: the
// store assigns one.
type CreatePlacePayload struct {
	Fields
}

func (p *CreatePlacePayload) Validate() error {
	return validation.ValidateStruct(p)
}

// UpdatePlacePayload combines the path id with the replacement fields.
type UpdatePlacePayload struct {
	ID int64 `json:"-" validate:"min=1"`
	Fields
}

func (p *UpdatePlacePayload) BindPath(b *echo.ValueBinder) error {
	return b.Int64("id", &p.ID).BindError()
}

func (p *UpdatePlacePayload) Validate() error {
	return validation.ValidateStruct(p)
}

// DeletePlacePayload identifies the place to delete.
type DeletePlacePayload struct {
	ID int64 `json:"-" validate:"min=1"`
}

func (p *DeletePlacePayload) BindPath(b *echo.ValueBinder) error {
	return b.Int64("id", &p.ID).BindError()
}

func (p *DeletePlacePayload) Validate() error {
	return validation.ValidateStruct(p)
}

// MutationResponse answers create and update.
type MutationResponse struct {
	Message string `json:"message"`
	Place   *Place `json:"place"`
}

// MessageResponse answers delete.
type MessageResponse struct {
	Message string `json:"message"`
}
