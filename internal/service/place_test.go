package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deppfellow/offered-places/internal/model/place"
	"github.com/deppfellow/offered-places/internal/repository"
)

func TestPlaceService_CRUD(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	svc := NewServices(&repository.Repositories{Place: repository.NewMemoryPlaceRepository()}).Place

	created, err := svc.Save(ctx, &place.Place{Title: "Cottage"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil || got == nil || got.Title != "Cottage" {
		t.Fatalf("GetByID=%+v err=%v", got, err)
	}

	places, err := svc.List(ctx)
	if err != nil || len(places) != 1 {
		t.Fatalf("List=%+v err=%v", places, err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := svc.GetByID(ctx, created.ID); got != nil {
		t.Fatalf("still present: %+v", got)
	}

	if !strings.Contains(buf.String(), "saved place") || !strings.Contains(buf.String(), "deleted place") {
		t.Fatalf("log=%s", buf.String())
	}
}

func TestPlaceService_PropagatesStoreErrors(t *testing.T) {
	store := repository.NewMemoryPlaceRepository()
	store.Err = errors.New("down")
	svc := NewPlaceService(store)
	ctx := context.Background()

	if _, err := svc.List(ctx); !errors.Is(err, store.Err) {
		t.Fatalf("List err=%v", err)
	}
	if _, err := svc.Save(ctx, &place.Place{Title: "x"}); !errors.Is(err, store.Err) {
		t.Fatalf("Save err=%v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, store.Err) {
		t.Fatalf("Delete err=%v", err)
	}
}
