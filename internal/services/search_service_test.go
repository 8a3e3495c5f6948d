package services

import (
	"testing"

	"rentiBack/internal/catalog"
	"rentiBack/internal/models"
)

func carIDs(cars []models.Car) []models.CarID {
	ids := make([]models.CarID, len(cars))
	for i, c := range cars {
		ids[i] = c.ID
	}
	return ids
}

func equalIDs(a []models.CarID, b ...models.CarID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterCars(t *testing.T) {
	inventory := catalog.Seed()

	cases := []struct {
		name string
		req  models.CarFilterRequest
		want []models.CarID
	}{
		{"no criteria", models.CarFilterRequest{}, []models.CarID{1, 2, 3, 4}},
		{"query city", models.CarFilterRequest{Query: "istanbul"}, []models.CarID{1, 2}},
		{"query district", models.CarFilterRequest{Query: "kadıköy"}, []models.CarID{2}},
		{"query brand case insensitive", models.CarFilterRequest{Query: "AUDI"}, []models.CarID{4}},
		{"query model", models.CarFilterRequest{Query: "clio"}, []models.CarID{3}},
		{"query no match", models.CarFilterRequest{Query: "lamborghini"}, []models.CarID{}},
		{"transmission", models.CarFilterRequest{Transmission: "Manual"}, []models.CarID{3}},
		{"fuel type", models.CarFilterRequest{FuelType: "Diesel"}, []models.CarID{2, 4}},
		{"age new", models.CarFilterRequest{AgeGroup: "new"}, []models.CarID{1, 2, 3, 4}},
		{"age mid", models.CarFilterRequest{AgeGroup: "mid"}, []models.CarID{}},
		{"age old", models.CarFilterRequest{AgeGroup: "old"}, []models.CarID{}},
		{"age unknown matches all", models.CarFilterRequest{AgeGroup: "vintage"}, []models.CarID{1, 2, 3, 4}},
		{"and combination", models.CarFilterRequest{Transmission: "Automatic", FuelType: "Diesel"}, []models.CarID{2, 4}},
		{"and combination narrows", models.CarFilterRequest{Query: "istanbul", FuelType: "Diesel"}, []models.CarID{2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := carIDs(FilterCars(inventory, tc.req))
			if !equalIDs(got, tc.want...) {
				t.Fatalf("FilterCars(%+v) = %v, want %v", tc.req, got, tc.want)
			}
		})
	}
}

func TestFilterCarsAgeBuckets(t *testing.T) {
	inventory := []models.Car{
		{ID: 10, Year: 2016, City: "Ankara"},
		{ID: 11, Year: 2017, City: "Ankara"},
		{ID: 12, Year: 2020, City: "Ankara"},
		{ID: 13, Year: 2021, City: "Ankara"},
	}

	cases := []struct {
		group string
		want  []models.CarID
	}{
		{"old", []models.CarID{10}},
		{"mid", []models.CarID{11, 12}},
		{"new", []models.CarID{13}},
	}

	for _, tc := range cases {
		t.Run(tc.group, func(t *testing.T) {
			got := carIDs(FilterCars(inventory, models.CarFilterRequest{AgeGroup: tc.group}))
			if !equalIDs(got, tc.want...) {
				t.Fatalf("age group %s = %v, want %v", tc.group, got, tc.want)
			}
		})
	}
}

func TestFilterCarsIsPure(t *testing.T) {
	inventory := catalog.Seed()
	req := models.CarFilterRequest{Query: "istanbul", FuelType: "Diesel"}

	first := FilterCars(inventory, req)
	second := FilterCars(inventory, req)
	if !equalIDs(carIDs(first), carIDs(second)...) {
		t.Fatalf("repeated calls differ: %v vs %v", carIDs(first), carIDs(second))
	}
	if !equalIDs(carIDs(inventory), 1, 2, 3, 4) {
		t.Fatalf("input inventory was mutated: %v", carIDs(inventory))
	}
}
