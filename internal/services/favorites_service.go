package services

import (
	"context"

	"golang.org/x/exp/slices"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
)

// FavoriteService keeps the favorites ledger: a persisted set of car ids
// toggled by user action.
type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
}

// ToggleSet removes the id when present, appends it otherwise. The input
// slice is never mutated.
func ToggleSet(current []models.CarID, id models.CarID) []models.CarID {
	if i := slices.Index(current, id); i >= 0 {
		out := make([]models.CarID, 0, len(current)-1)
		out = append(out, current[:i]...)
		return append(out, current[i+1:]...)
	}
	out := make([]models.CarID, 0, len(current)+1)
	out = append(out, current...)
	return append(out, id)
}

// ResolveFavoriteCars returns the inventory entries whose id is favorited,
// in inventory order regardless of toggle order.
func ResolveFavoriteCars(inventory []models.Car, ids []models.CarID) []models.Car {
	out := make([]models.Car, 0, len(ids))
	for _, car := range inventory {
		if slices.Contains(ids, car.ID) {
			out = append(out, car)
		}
	}
	return out
}

// Toggle flips the id in the persisted ledger and returns the new set. The
// write happens before returning so a reload can never observe a stale set
// relative to what the caller just saw.
func (s *FavoriteService) Toggle(ctx context.Context, id models.CarID) ([]models.CarID, error) {
	current, err := s.FavoriteRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	next := ToggleSet(current, id)
	if err := s.FavoriteRepo.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Favorites resolves the persisted ledger against the given inventory.
func (s *FavoriteService) Favorites(ctx context.Context, inventory []models.Car) ([]models.Car, error) {
	ids, err := s.FavoriteRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveFavoriteCars(inventory, ids), nil
}
