package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rentiBack/internal/models"
	"rentiBack/internal/store"
)

// CarRepository owns the persisted "my cars" collection. The whole collection
// is stored as one JSON array and rewritten on every mutation
// (read-modify-write, last write wins).
type CarRepository struct {
	Store store.Store
}

// ListMyCars returns the persisted user listings. Missing or corrupt data
// yields an empty list, and entries that are not well-formed objects or lack
// an id are dropped.
func (r *CarRepository) ListMyCars(ctx context.Context) ([]models.Car, error) {
	raw, err := r.Store.Get(ctx, store.KeyMyCars)
	if errors.Is(err, store.ErrNoKey) {
		return []models.Car{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("car repository: read my cars: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// corrupt collection, start over
		return []models.Car{}, nil
	}

	cars := make([]models.Car, 0, len(entries))
	for _, entry := range entries {
		var car models.Car
		if err := json.Unmarshal(entry, &car); err != nil {
			continue
		}
		if car.ID == 0 {
			continue
		}
		cars = append(cars, car)
	}
	return cars, nil
}

// ReplaceMyCars rewrites the full collection.
func (r *CarRepository) ReplaceMyCars(ctx context.Context, cars []models.Car) error {
	if cars == nil {
		cars = []models.Car{}
	}
	data, err := json.Marshal(cars)
	if err != nil {
		return fmt.Errorf("car repository: encode my cars: %w", err)
	}
	if err := r.Store.Set(ctx, store.KeyMyCars, string(data)); err != nil {
		return fmt.Errorf("car repository: write my cars: %w", err)
	}
	return nil
}
