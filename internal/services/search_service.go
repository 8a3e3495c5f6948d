package services

import (
	"strings"

	"rentiBack/internal/models"
)

// Age bucket boundaries for the age_group filter.
const (
	ageNewFrom = 2021
	ageMidFrom = 2017
)

// FilterCars applies the search criteria to the aggregated inventory.
// Absent criteria match everything, active predicates AND-combine, and the
// input order is preserved. The function is pure and a single O(n) pass, so
// it is safe to call on every criteria change.
func FilterCars(inventory []models.Car, req models.CarFilterRequest) []models.Car {
	query := strings.ToLower(strings.TrimSpace(req.Query))

	out := make([]models.Car, 0, len(inventory))
	for _, car := range inventory {
		if query != "" && !matchesQuery(car, query) {
			continue
		}
		if req.Transmission != "" && car.Transmission != req.Transmission {
			continue
		}
		if req.FuelType != "" && car.FuelType != req.FuelType {
			continue
		}
		if !matchesAgeGroup(car.Year, req.AgeGroup) {
			continue
		}
		out = append(out, car)
	}
	return out
}

// matchesQuery checks the lowercased query as a substring of city, district,
// brand or model.
func matchesQuery(car models.Car, query string) bool {
	return strings.Contains(strings.ToLower(car.City), query) ||
		strings.Contains(strings.ToLower(car.District), query) ||
		strings.Contains(strings.ToLower(car.Brand), query) ||
		strings.Contains(strings.ToLower(car.Model), query)
}

func matchesAgeGroup(year int, group string) bool {
	switch group {
	case "new":
		return year >= ageNewFrom
	case "mid":
		return year >= ageMidFrom && year < ageNewFrom
	case "old":
		return year < ageMidFrom
	default:
		// unrecognized or absent bucket matches all
		return true
	}
}
