package services

import (
	"context"

	"rentiBack/internal/catalog"
	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
)

// InventoryService merges the seed catalog with the persisted user listings.
type InventoryService struct {
	CarRepo *repositories.CarRepository
}

// AggregateInventory returns the unified collection, seed first, user
// listings after, re-read from storage on every call.
func (s *InventoryService) AggregateInventory(ctx context.Context) ([]models.Car, error) {
	myCars, err := s.CarRepo.ListMyCars(ctx)
	if err != nil {
		return nil, err
	}
	return append(catalog.Seed(), myCars...), nil
}

// CarByID resolves one car out of the aggregated inventory.
func (s *InventoryService) CarByID(ctx context.Context, id models.CarID) (models.Car, error) {
	cars, err := s.AggregateInventory(ctx)
	if err != nil {
		return models.Car{}, err
	}
	for _, car := range cars {
		if car.ID == id {
			return car, nil
		}
	}
	return models.Car{}, models.ErrCarNotFound
}

// MapCars returns only the aggregated cars that carry coordinates; records
// without a location are list-only.
func (s *InventoryService) MapCars(ctx context.Context) ([]models.Car, error) {
	cars, err := s.AggregateInventory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.HasCoordinates() {
			out = append(out, car)
		}
	}
	return out, nil
}
