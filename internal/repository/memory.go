package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/deppfellow/offered-places/internal/model/place"
)

// MemoryPlaceRepository keeps places in memory. It honors the same contract
// as PlaceRepository and is safe for concurrent use.
type MemoryPlaceRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]place.Place

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryPlaceRepository() *MemoryPlaceRepository {
	return &MemoryPlaceRepository{
		byID: make(map[int64]place.Place),
	}
}

var _ PlaceStore = (*MemoryPlaceRepository)(nil)

func (r *MemoryPlaceRepository) FindAll(_ context.Context) ([]place.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]place.Place, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p.Clone())
	}
	slices.SortFunc(out, func(a, b place.Place) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *MemoryPlaceRepository) FindByID(_ context.Context, id int64) (*place.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := p.Clone()
	return &clone, nil
}

func (r *MemoryPlaceRepository) Save(_ context.Context, p *place.Place) (*place.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	saved := p.Clone()
	if saved.ID == 0 {
		r.nextID++
		saved.ID = r.nextID
	} else if _, ok := r.byID[saved.ID]; !ok {
		return nil, fmt.Errorf("place_id=%d: %w", saved.ID, ErrNotFound)
	}

	r.byID[saved.ID] = saved
	out := saved.Clone()
	return &out, nil
}

func (r *MemoryPlaceRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	delete(r.byID, id)
	return nil
}
