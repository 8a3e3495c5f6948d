package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_out", authMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Get("/user/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/user/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))
	mux.Post("/user/profile/image", authMiddleware.ThenFunc(app.userHandler.UploadProfileImage))

	// Cars
	mux.Get("/car", standardMiddleware.ThenFunc(app.carHandler.GetCars))
	mux.Post("/car/filtered", standardMiddleware.ThenFunc(app.carHandler.GetFilteredCars))
	mux.Get("/car/map", standardMiddleware.ThenFunc(app.carHandler.GetMapCars))
	mux.Get("/car/:id", standardMiddleware.ThenFunc(app.carHandler.GetCarByID))

	// My listings
	mux.Get("/my_cars", authMiddleware.ThenFunc(app.listingHandler.GetMyCars))
	mux.Post("/my_cars", authMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Put("/my_cars/:id", authMiddleware.ThenFunc(app.listingHandler.UpdateListing))
	mux.Del("/my_cars/:id", authMiddleware.ThenFunc(app.listingHandler.DeleteListing))

	// Favorites
	mux.Post("/favorites/toggle", authMiddleware.ThenFunc(app.favoriteHandler.ToggleFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))

	// Wallet
	mux.Get("/wallet", authMiddleware.ThenFunc(app.walletHandler.GetBalance))
	mux.Post("/wallet/topup", authMiddleware.ThenFunc(app.walletHandler.TopUp))
	mux.Post("/wallet/charge", authMiddleware.ThenFunc(app.walletHandler.Charge))

	// Inventory change feed
	mux.Get("/ws", http.HandlerFunc(app.ChangeFeedHandler))

	return standardMiddleware.Then(mux)
}
