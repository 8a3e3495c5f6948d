package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"rentiBack/internal/models"
	"rentiBack/internal/store"
)

// FavoriteRepository persists the favorite car ids as one JSON array.
type FavoriteRepository struct {
	Store store.Store
}

// IDs returns the stored favorites, numeric-coercing entries that were
// persisted as strings. Missing or corrupt data yields an empty set.
func (r *FavoriteRepository) IDs(ctx context.Context) ([]models.CarID, error) {
	raw, err := r.Store.Get(ctx, store.KeyFavorites)
	if errors.Is(err, store.ErrNoKey) {
		return []models.CarID{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("favorite repository: read favorites: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []models.CarID{}, nil
	}

	ids := make([]models.CarID, 0, len(entries))
	for _, entry := range entries {
		s := string(entry)
		if len(s) >= 2 && s[0] == '"' {
			s = s[1 : len(s)-1]
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, models.CarID(n))
	}
	return ids, nil
}

func (r *FavoriteRepository) Save(ctx context.Context, ids []models.CarID) error {
	if ids == nil {
		ids = []models.CarID{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("favorite repository: encode favorites: %w", err)
	}
	if err := r.Store.Set(ctx, store.KeyFavorites, string(data)); err != nil {
		return fmt.Errorf("favorite repository: write favorites: %w", err)
	}
	return nil
}
