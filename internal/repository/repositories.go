package repository

import (
	"github.com/deppfellow/offered-places/internal/server"
)

// Repositories groups every store the services depend on.
type Repositories struct {
	Place PlaceStore
}

// NewRepositories builds the PostgreSQL-backed stores on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Place: NewPlaceRepository(s.DB.Pool),
	}
}
