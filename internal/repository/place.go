package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/offered-places/internal/model/place"
)

const placeColumns = `id, title, image_url, descripcion, available_from, available_to, user_num, price`

// PlaceRepository stores places in the offered_places table.
type PlaceRepository struct {
	pool *pgxpool.Pool
}

func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{pool: pool}
}

var _ PlaceStore = (*PlaceRepository)(nil)

func (r *PlaceRepository) FindAll(ctx context.Context) ([]place.Place, error) {
	stmt := `SELECT ` + placeColumns + ` FROM ` + place.TableName + ` ORDER BY id`

	rows, err := r.pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list places query: %w", err)
	}

	places, err := pgx.CollectRows(rows, pgx.RowToStructByName[place.Place])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", place.TableName, err)
	}
	if places == nil {
		places = []place.Place{}
	}

	return places, nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id int64) (*place.Place, error) {
	stmt := `SELECT ` + placeColumns + ` FROM ` + place.TableName + ` WHERE id = @id`

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get place by id query for place_id=%d: %w", id, err)
	}

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[place.Place])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:%s for place_id=%d: %w", place.TableName, id, err)
	}

	return &p, nil
}

func (r *PlaceRepository) Save(ctx context.Context, p *place.Place) (*place.Place, error) {
	var saved place.Place

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		if p.ID == 0 {
			saved, err = r.insert(ctx, tx, p)
		} else {
			saved, err = r.update(ctx, tx, p)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func placeArgs(p *place.Place) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":             p.ID,
		"title":          p.Title,
		"image_url":      p.ImageURL,
		"descripcion":    p.Descripcion,
		"available_from": p.AvailableFrom,
		"available_to":   p.AvailableTo,
		"user_num":       p.UserNum,
		"price":          p.Price,
	}
}

func (r *PlaceRepository) insert(ctx context.Context, tx pgx.Tx, p *place.Place) (place.Place, error) {
	stmt := `
		INSERT INTO ` + place.TableName + ` (
			title, image_url, descripcion, available_from, available_to, user_num, price
		) VALUES (
			@title, @image_url, @descripcion, @available_from, @available_to, @user_num, @price
		)
		RETURNING ` + placeColumns

	rows, err := tx.Query(ctx, stmt, placeArgs(p))
	if err != nil {
		return place.Place{}, fmt.Errorf("failed to execute create place query: %w", err)
	}

	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[place.Place])
	if err != nil {
		return place.Place{}, fmt.Errorf("failed to collect row from table:%s: %w", place.TableName, err)
	}

	return saved, nil
}

func (r *PlaceRepository) update(ctx context.Context, tx pgx.Tx, p *place.Place) (place.Place, error) {
	stmt := `
		UPDATE ` + place.TableName + `
		SET
			title = @title,
			image_url = @image_url,
			descripcion = @descripcion,
			available_from = @available_from,
			available_to = @available_to,
			user_num = @user_num,
			price = @price
		WHERE id = @id
		RETURNING ` + placeColumns

	rows, err := tx.Query(ctx, stmt, placeArgs(p))
	if err != nil {
		return place.Place{}, fmt.Errorf("failed to execute update place query for place_id=%d: %w", p.ID, err)
	}

	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[place.Place])
	if errors.Is(err, pgx.ErrNoRows) {
		return place.Place{}, fmt.Errorf("place_id=%d: %w", p.ID, ErrNotFound)
	}
	if err != nil {
		return place.Place{}, fmt.Errorf("failed to collect row from table:%s for place_id=%d: %w", place.TableName, p.ID, err)
	}

	return saved, nil
}

func (r *PlaceRepository) DeleteByID(ctx context.Context, id int64) error {
	stmt := `DELETE FROM ` + place.TableName + ` WHERE id = @id`

	if _, err := r.pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to execute delete place query for place_id=%d: %w", id, err)
	}

	return nil
}
