package models

import (
	"strconv"
	"strings"
	"time"
)

// CarID is the canonical numeric car identifier. Seed ids are small integers,
// user-submitted ids are millisecond timestamps. Persisted data may carry ids
// as JSON numbers or strings, so decoding coerces both forms.
type CarID int64

func (id *CarID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// non-numeric id, treat as missing
		*id = 0
		return nil
	}
	*id = CarID(n)
	return nil
}

func (id CarID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Car struct {
	ID           CarID      `json:"id"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Name         string     `json:"name"`
	Year         int        `json:"year"`
	Type         string     `json:"type,omitempty"`
	FuelType     string     `json:"fuel_type"`
	Transmission string     `json:"transmission"`
	Features     []string   `json:"features,omitempty"`
	PricePerHour float64    `json:"price_per_hour"`
	PricePerDay  float64    `json:"price_per_day"`
	Rating       float64    `json:"rating"`
	Reviews      int        `json:"reviews"`
	Image        string     `json:"image,omitempty"`
	Images       []string   `json:"images,omitempty"`
	City         string     `json:"city"`
	District     string     `json:"district,omitempty"`
	Neighborhood string     `json:"neighborhood,omitempty"`
	Address      string     `json:"address,omitempty"`
	Latitude     float64    `json:"latitude,omitempty"`
	Longitude    float64    `json:"longitude,omitempty"`
	Status       string     `json:"status,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// HasCoordinates reports whether the car can be placed on the map. Records
// without coordinates stay in list output but are skipped by map output.
func (c Car) HasCoordinates() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

type CarFilterRequest struct {
	Query        string `json:"query"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuel_type"`
	AgeGroup     string `json:"age_group"` // new, mid, old
}

type CarListResponse struct {
	Cars  []Car `json:"cars"`
	Total int   `json:"total"`
}

// ListingPatch carries the mutable listing fields for update operations.
// Pointers distinguish "not sent" from zero values.
type ListingPatch struct {
	Brand        *string   `json:"brand,omitempty"`
	Model        *string   `json:"model,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Type         *string   `json:"type,omitempty"`
	FuelType     *string   `json:"fuel_type,omitempty"`
	Transmission *string   `json:"transmission,omitempty"`
	Features     *[]string `json:"features,omitempty"`
	PricePerDay  *float64  `json:"price_per_day,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	City         *string   `json:"city,omitempty"`
	District     *string   `json:"district,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Status       *string   `json:"status,omitempty"`
}
