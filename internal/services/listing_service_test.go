package services

import (
	"context"
	"testing"
	"time"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
	"rentiBack/internal/store"
)

type countingNotifier struct {
	fired int
}

func (n *countingNotifier) InventoryChanged() { n.fired++ }

func newListingFixture() (*ListingService, *InventoryService, *countingNotifier) {
	mem := store.NewMemory()
	repo := &repositories.CarRepository{Store: mem}
	notifier := &countingNotifier{}
	listing := &ListingService{
		CarRepo:  repo,
		Notifier: notifier,
		Now:      func() time.Time { return time.UnixMilli(1756700000000) },
	}
	return listing, &InventoryService{CarRepo: repo}, notifier
}

func TestPricePerHour(t *testing.T) {
	cases := []struct {
		pricePerDay float64
		want        float64
	}{
		{2000, 83},
		{1800, 75},
		{2200, 92},
		{950, 40},
		{0, 0},
	}
	for _, tc := range cases {
		if got := PricePerHour(tc.pricePerDay); got != tc.want {
			t.Fatalf("PricePerHour(%v) = %v, want %v", tc.pricePerDay, got, tc.want)
		}
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()
	listing, inventory, notifier := newListingFixture()

	car, err := listing.CreateListing(ctx, CreateListingRequest{
		Brand:        "Tesla",
		Model:        "Model Y",
		Year:         2024,
		FuelType:     "Electric",
		Transmission: "Automatic",
		PricePerDay:  2000,
		City:         "Istanbul",
		District:     "Beşiktaş",
	})
	if err != nil {
		t.Fatal(err)
	}

	if car.ID != 1756700000000 {
		t.Fatalf("id should be the creation time in millis, got %d", car.ID)
	}
	if car.PricePerHour != 83 {
		t.Fatalf("price per hour = %v, want 83", car.PricePerHour)
	}
	if car.Name != "Tesla Model Y" {
		t.Fatalf("name = %q", car.Name)
	}
	if car.Rating != 5.0 || car.Reviews != 0 || car.Status != "Active" {
		t.Fatalf("defaults not applied: rating=%v reviews=%d status=%q", car.Rating, car.Reviews, car.Status)
	}
	if notifier.fired != 1 {
		t.Fatalf("expected exactly one notification, got %d", notifier.fired)
	}

	cars, err := inventory.AggregateInventory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cars) != 5 {
		t.Fatalf("aggregated inventory should have 5 cars, got %d", len(cars))
	}
}

func TestUpdateListingRecomputesHourlyPrice(t *testing.T) {
	ctx := context.Background()
	listing, _, notifier := newListingFixture()

	created, err := listing.CreateListing(ctx, CreateListingRequest{
		Brand: "Tesla", Model: "Model Y", PricePerDay: 2000,
	})
	if err != nil {
		t.Fatal(err)
	}

	newPrice := 2400.0
	newModel := "Model 3"
	updated, err := listing.UpdateListing(ctx, created.ID, models.ListingPatch{
		Model:       &newModel,
		PricePerDay: &newPrice,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must be preserved, got %d", updated.ID)
	}
	if updated.PricePerHour != 100 {
		t.Fatalf("price per hour = %v, want 100", updated.PricePerHour)
	}
	if updated.Name != "Tesla Model 3" {
		t.Fatalf("derived name not refreshed: %q", updated.Name)
	}
	if notifier.fired != 2 {
		t.Fatalf("expected 2 notifications, got %d", notifier.fired)
	}
}

func TestUpdateListingNotFound(t *testing.T) {
	ctx := context.Background()
	listing, _, notifier := newListingFixture()

	year := 2024
	if _, err := listing.UpdateListing(ctx, 42, models.ListingPatch{Year: &year}); err != models.ErrCarNotFound {
		t.Fatalf("expected ErrCarNotFound, got %v", err)
	}
	if notifier.fired != 0 {
		t.Fatalf("failed mutation must not notify, fired %d times", notifier.fired)
	}
}

func TestDeleteListing(t *testing.T) {
	ctx := context.Background()
	listing, inventory, notifier := newListingFixture()

	created, err := listing.CreateListing(ctx, CreateListingRequest{
		Brand: "Tesla", Model: "Model Y", PricePerDay: 2000,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := listing.DeleteListing(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	cars, err := inventory.AggregateInventory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cars) != 4 {
		t.Fatalf("aggregation should return to 4 cars, got %d", len(cars))
	}
	if notifier.fired != 2 {
		t.Fatalf("expected 2 notifications, got %d", notifier.fired)
	}

	if err := listing.DeleteListing(ctx, created.ID); err != models.ErrCarNotFound {
		t.Fatalf("second delete should report ErrCarNotFound, got %v", err)
	}
}
