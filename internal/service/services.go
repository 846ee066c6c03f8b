// Package service sits between the handlers and the repositories.
//
// Offered places carry no business rules beyond what the handlers validate,
// so PlaceService forwards to its store.
package service

import (
	"github.com/deppfellow/offered-places/internal/repository"
)

type Services struct {
	Place *PlaceService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Place: NewPlaceService(repos.Place),
	}
}
