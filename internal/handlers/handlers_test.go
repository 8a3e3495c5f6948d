package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
	"rentiBack/internal/services"
	"rentiBack/internal/store"
)

type fixture struct {
	carHandler      *CarHandler
	listingHandler  *ListingHandler
	favoriteHandler *FavoriteHandler
	walletHandler   *WalletHandler
}

func newFixture() *fixture {
	mem := store.NewMemory()
	carRepo := &repositories.CarRepository{Store: mem}
	favoriteRepo := &repositories.FavoriteRepository{Store: mem}
	walletRepo := &repositories.WalletRepository{Store: mem}

	inventory := &services.InventoryService{CarRepo: carRepo}
	listing := &services.ListingService{CarRepo: carRepo}
	favorites := &services.FavoriteService{FavoriteRepo: favoriteRepo}
	wallet := &services.WalletService{WalletRepo: walletRepo}

	return &fixture{
		carHandler:      &CarHandler{Inventory: inventory},
		listingHandler:  &ListingHandler{Service: listing, CarRepo: carRepo},
		favoriteHandler: &FavoriteHandler{Service: favorites, Inventory: inventory},
		walletHandler:   &WalletHandler{Service: wallet},
	}
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGetCarsReturnsSeedCatalog(t *testing.T) {
	f := newFixture()

	rec := doJSON(t, f.carHandler.GetCars, http.MethodGet, "/car", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, "BMW 320i", resp.Cars[0].Name)
}

func TestFilteredCars(t *testing.T) {
	f := newFixture()

	rec := doJSON(t, f.carHandler.GetFilteredCars, http.MethodPost, "/car/filtered",
		models.CarFilterRequest{Query: "kadıköy"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Peugeot 3008", resp.Cars[0].Name)
}

func TestListingLifecycleOverHTTP(t *testing.T) {
	f := newFixture()

	rec := doJSON(t, f.listingHandler.CreateListing, http.MethodPost, "/my_cars",
		services.CreateListingRequest{Brand: "Tesla", Model: "Model Y", Year: 2024, PricePerDay: 2000})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Car
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.EqualValues(t, 83, created.PricePerHour)

	rec = doJSON(t, f.carHandler.GetCars, http.MethodGet, "/car", nil)
	var listed models.CarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, 5, listed.Total)

	rec = doJSON(t, f.listingHandler.DeleteListing, http.MethodDelete,
		"/my_cars/x?:id="+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, f.carHandler.GetCars, http.MethodGet, "/car", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Equal(t, 4, listed.Total)
}

func TestCreateListingValidation(t *testing.T) {
	f := newFixture()

	rec := doJSON(t, f.listingHandler.CreateListing, http.MethodPost, "/my_cars",
		services.CreateListingRequest{Brand: "Tesla"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavoriteOverHTTP(t *testing.T) {
	f := newFixture()

	rec := doJSON(t, f.favoriteHandler.ToggleFavorite, http.MethodPost, "/favorites/toggle",
		map[string]any{"car_id": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, f.favoriteHandler.ToggleFavorite, http.MethodPost, "/favorites/toggle",
		map[string]any{"car_id": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, f.favoriteHandler.GetFavorites, http.MethodGet, "/favorites", nil)
	var resp models.CarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Peugeot 3008", resp.Cars[0].Name)
	assert.Equal(t, "Audi A4", resp.Cars[1].Name)
}

func TestWalletChargeWithoutFunds(t *testing.T) {
	f := newFixture()

	rec := doJSON(t, f.walletHandler.Charge, http.MethodPost, "/wallet/charge",
		map[string]any{"amount": 100})
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	rec = doJSON(t, f.walletHandler.TopUp, http.MethodPost, "/wallet/topup",
		map[string]any{"amount": 250})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, f.walletHandler.Charge, http.MethodPost, "/wallet/charge",
		map[string]any{"amount": 100})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 150, resp.Balance)
}
