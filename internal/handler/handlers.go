// Package handler is the HTTP layer. Handlers bind and validate requests
// through the validation package, call the service layer and shape the
// responses.
package handler

import (
	"github.com/deppfellow/offered-places/internal/server"
	"github.com/deppfellow/offered-places/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Place   *PlaceHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Place:   NewPlaceHandler(s, services.Place),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
