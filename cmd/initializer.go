package main

import (
	"log"
	"os"

	"rentiBack/internal/config"
	"rentiBack/internal/handlers"
	"rentiBack/internal/repositories"
	"rentiBack/internal/services"
	"rentiBack/internal/store"
	"rentiBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	store      store.Store
	changeFeed *ChangeFeed

	carRepo      *repositories.CarRepository
	favoriteRepo *repositories.FavoriteRepository
	userRepo     *repositories.UserRepository
	walletRepo   *repositories.WalletRepository

	inventoryService *services.InventoryService
	listingService   *services.ListingService
	favoriteService  *services.FavoriteService
	userService      *services.UserService
	walletService    *services.WalletService

	carHandler      *handlers.CarHandler
	listingHandler  *handlers.ListingHandler
	favoriteHandler *handlers.FavoriteHandler
	userHandler     *handlers.UserHandler
	walletHandler   *handlers.WalletHandler
}

func initializeApp(cfg config.Config, st store.Store, errorLog, infoLog *log.Logger) *application {
	// Repositories
	carRepo := &repositories.CarRepository{Store: st}
	favoriteRepo := &repositories.FavoriteRepository{Store: st}
	userRepo := &repositories.UserRepository{Store: st}
	walletRepo := &repositories.WalletRepository{Store: st}

	// Services
	inventoryService := &services.InventoryService{CarRepo: carRepo}
	listingService := &services.ListingService{CarRepo: carRepo}
	favoriteService := &services.FavoriteService{FavoriteRepo: favoriteRepo}
	userService := &services.UserService{UserRepo: userRepo}
	walletService := &services.WalletService{WalletRepo: walletRepo}

	uploader := &utils.S3Uploader{
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}

	// Handlers
	carHandler := &handlers.CarHandler{Inventory: inventoryService}
	listingHandler := &handlers.ListingHandler{Service: listingService, CarRepo: carRepo}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService, Inventory: inventoryService}
	userHandler := &handlers.UserHandler{Service: userService, Uploader: uploader}
	walletHandler := &handlers.WalletHandler{Service: walletService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		store:            st,
		carRepo:          carRepo,
		favoriteRepo:     favoriteRepo,
		userRepo:         userRepo,
		walletRepo:       walletRepo,
		inventoryService: inventoryService,
		listingService:   listingService,
		favoriteService:  favoriteService,
		userService:      userService,
		walletService:    walletService,
		carHandler:       carHandler,
		listingHandler:   listingHandler,
		favoriteHandler:  favoriteHandler,
		userHandler:      userHandler,
		walletHandler:    walletHandler,
	}
}
