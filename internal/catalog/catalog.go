// Package catalog holds the fixed seed inventory the marketplace starts
// with. Seed records are immutable; user listings are merged after them at
// aggregation time.
package catalog

import (
	"rentiBack/internal/models"
)

var seed = []models.Car{
	{
		ID:           1,
		Brand:        "BMW",
		Model:        "320i",
		Name:         "BMW 320i",
		Year:         2021,
		Type:         "Sedan",
		FuelType:     "Petrol",
		Transmission: "Automatic",
		Features:     []string{"Sunroof", "Bluetooth", "Parking Sensors"},
		PricePerDay:  1800,
		PricePerHour: 75,
		Rating:       4.8,
		Reviews:      126,
		Image:        "https://images.renti.example/cars/bmw-320i.jpg",
		City:         "Istanbul",
		District:     "Şişli",
		Latitude:     41.0602,
		Longitude:    28.9877,
		Status:       "Active",
	},
	{
		ID:           2,
		Brand:        "Peugeot",
		Model:        "3008",
		Name:         "Peugeot 3008",
		Year:         2023,
		Type:         "SUV",
		FuelType:     "Diesel",
		Transmission: "Automatic",
		Features:     []string{"Panoramic Roof", "Lane Assist", "CarPlay"},
		PricePerDay:  2200,
		PricePerHour: 92,
		Rating:       4.9,
		Reviews:      84,
		Image:        "https://images.renti.example/cars/peugeot-3008.jpg",
		City:         "Istanbul",
		District:     "Kadıköy",
		Latitude:     40.9829,
		Longitude:    29.0282,
		Status:       "Active",
	},
	{
		ID:           3,
		Brand:        "Renault",
		Model:        "Clio",
		Name:         "Renault Clio",
		Year:         2022,
		Type:         "Hatchback",
		FuelType:     "Petrol",
		Transmission: "Manual",
		Features:     []string{"Bluetooth", "Cruise Control"},
		PricePerDay:  950,
		PricePerHour: 40,
		Rating:       4.6,
		Reviews:      203,
		Image:        "https://images.renti.example/cars/renault-clio.jpg",
		City:         "Ankara",
		District:     "Çankaya",
		Latitude:     39.9180,
		Longitude:    32.8627,
		Status:       "Active",
	},
	{
		ID:           4,
		Brand:        "Audi",
		Model:        "A4",
		Name:         "Audi A4",
		Year:         2023,
		Type:         "Sedan",
		FuelType:     "Diesel",
		Transmission: "Automatic",
		Features:     []string{"Virtual Cockpit", "Matrix LED", "Heated Seats"},
		PricePerDay:  2600,
		PricePerHour: 108,
		Rating:       4.7,
		Reviews:      59,
		Image:        "https://images.renti.example/cars/audi-a4.jpg",
		City:         "Izmir",
		District:     "Konak",
		Latitude:     38.4189,
		Longitude:    27.1287,
		Status:       "Active",
	},
}

// Seed returns a copy of the seed catalog so callers can never mutate the
// compiled-in records.
func Seed() []models.Car {
	out := make([]models.Car, len(seed))
	copy(out, seed)
	return out
}
