// Package repository handles all interactions with the database.
//
// Stores implement the generic Repository contract so the service layer can
// run against PostgreSQL in production and an in-memory store in tests.
package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/offered-places/internal/model/place"
)

// ErrNotFound is returned by Save when asked to update a row that does not
// exist. Lookups report absence with a nil result instead.
var ErrNotFound = errors.New("record not found")

// Repository is the CRUD contract of a table-backed store.
type Repository[T any, ID comparable] interface {
	// FindAll returns every record ordered by id; never nil.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns nil, nil when id does not exist.
	FindByID(ctx context.Context, id ID) (*T, error)

	// Save inserts entity when its id is zero (assigning one) and
	// otherwise replaces the stored row. The write is transactional.
	Save(ctx context.Context, entity *T) (*T, error)

	// DeleteByID removes id; deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id ID) error
}

// PlaceStore is the store for offered places.
type PlaceStore = Repository[place.Place, int64]
