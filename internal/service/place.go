package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/offered-places/internal/model/place"
	"github.com/deppfellow/offered-places/internal/repository"
)

type PlaceService struct {
	store repository.PlaceStore
}

func NewPlaceService(store repository.PlaceStore) *PlaceService {
	return &PlaceService{store: store}
}

func (s *PlaceService) List(ctx context.Context) ([]place.Place, error) {
	places, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int("count", len(places)).Msg("listed places")
	return places, nil
}

// GetByID returns nil, nil when the place does not exist.
func (s *PlaceService) GetByID(ctx context.Context, id int64) (*place.Place, error) {
	return s.store.FindByID(ctx, id)
}

// Save inserts p when it has no id and replaces the stored row otherwise.
func (s *PlaceService) Save(ctx context.Context, p *place.Place) (*place.Place, error) {
	saved, err := s.store.Save(ctx, p)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int64("place_id", saved.ID).Msg("saved place")
	return saved, nil
}

func (s *PlaceService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Int64("place_id", id).Msg("deleted place")
	return nil
}
