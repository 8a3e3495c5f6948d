package services

import (
	"context"
	"math"
	"time"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
)

// Notifier receives one event per successful listing mutation, fired after
// the storage write so subscribers re-aggregate against fresh data.
type Notifier interface {
	InventoryChanged()
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func()

func (f NotifierFunc) InventoryChanged() { f() }

// ListingService implements the create/edit/delete operations against the
// persisted "my cars" collection.
type ListingService struct {
	CarRepo  *repositories.CarRepository
	Notifier Notifier
	Now      func() time.Time
}

func (s *ListingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ListingService) notify() {
	if s.Notifier != nil {
		s.Notifier.InventoryChanged()
	}
}

// PricePerHour derives the hourly price from the daily one.
func PricePerHour(pricePerDay float64) float64 {
	return math.Round(pricePerDay / 24)
}

type CreateListingRequest struct {
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Type         string   `json:"type"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	Features     []string `json:"features"`
	PricePerDay  float64  `json:"price_per_day"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	City         string   `json:"city"`
	District     string   `json:"district"`
	Neighborhood string   `json:"neighborhood"`
	Address      string   `json:"address"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
}

// CreateListing appends a new user listing. The id is the creation time in
// milliseconds and the hourly price is derived from the daily one.
func (s *ListingService) CreateListing(ctx context.Context, req CreateListingRequest) (models.Car, error) {
	now := s.now()
	car := models.Car{
		ID:           models.CarID(now.UnixMilli()),
		Brand:        req.Brand,
		Model:        req.Model,
		Name:         req.Brand + " " + req.Model,
		Year:         req.Year,
		Type:         req.Type,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Features:     req.Features,
		PricePerDay:  req.PricePerDay,
		PricePerHour: PricePerHour(req.PricePerDay),
		Rating:       5.0,
		Reviews:      0,
		Image:        req.Image,
		Images:       req.Images,
		City:         req.City,
		District:     req.District,
		Neighborhood: req.Neighborhood,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Status:       "Active",
		CreatedAt:    now,
	}

	cars, err := s.CarRepo.ListMyCars(ctx)
	if err != nil {
		return models.Car{}, err
	}
	cars = append(cars, car)
	if err := s.CarRepo.ReplaceMyCars(ctx, cars); err != nil {
		return models.Car{}, err
	}
	s.notify()
	return car, nil
}

// UpdateListing merges the patch over the stored listing, recomputes the
// hourly price and rewrites the collection.
func (s *ListingService) UpdateListing(ctx context.Context, id models.CarID, patch models.ListingPatch) (models.Car, error) {
	cars, err := s.CarRepo.ListMyCars(ctx)
	if err != nil {
		return models.Car{}, err
	}

	idx := -1
	for i, car := range cars {
		if car.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Car{}, models.ErrCarNotFound
	}

	car := applyPatch(cars[idx], patch)
	car.PricePerHour = PricePerHour(car.PricePerDay)
	now := s.now()
	car.UpdatedAt = &now
	cars[idx] = car

	if err := s.CarRepo.ReplaceMyCars(ctx, cars); err != nil {
		return models.Car{}, err
	}
	s.notify()
	return car, nil
}

// DeleteListing drops the listing by id and rewrites the remaining
// collection.
func (s *ListingService) DeleteListing(ctx context.Context, id models.CarID) error {
	cars, err := s.CarRepo.ListMyCars(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.ID != id {
			remaining = append(remaining, car)
		}
	}
	if len(remaining) == len(cars) {
		return models.ErrCarNotFound
	}

	if err := s.CarRepo.ReplaceMyCars(ctx, remaining); err != nil {
		return err
	}
	s.notify()
	return nil
}

func applyPatch(car models.Car, patch models.ListingPatch) models.Car {
	if patch.Brand != nil {
		car.Brand = *patch.Brand
	}
	if patch.Model != nil {
		car.Model = *patch.Model
	}
	if patch.Brand != nil || patch.Model != nil {
		car.Name = car.Brand + " " + car.Model
	}
	if patch.Year != nil {
		car.Year = *patch.Year
	}
	if patch.Type != nil {
		car.Type = *patch.Type
	}
	if patch.FuelType != nil {
		car.FuelType = *patch.FuelType
	}
	if patch.Transmission != nil {
		car.Transmission = *patch.Transmission
	}
	if patch.Features != nil {
		car.Features = *patch.Features
	}
	if patch.PricePerDay != nil {
		car.PricePerDay = *patch.PricePerDay
	}
	if patch.Image != nil {
		car.Image = *patch.Image
	}
	if patch.Images != nil {
		car.Images = *patch.Images
	}
	if patch.City != nil {
		car.City = *patch.City
	}
	if patch.District != nil {
		car.District = *patch.District
	}
	if patch.Neighborhood != nil {
		car.Neighborhood = *patch.Neighborhood
	}
	if patch.Address != nil {
		car.Address = *patch.Address
	}
	if patch.Latitude != nil {
		car.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		car.Longitude = *patch.Longitude
	}
	if patch.Status != nil {
		car.Status = *patch.Status
	}
	return car
}
