package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"rentiBack/internal/config"
	"rentiBack/internal/store"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg := config.LoadConfig()

	addr := cfg.Server.Address
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	flagAddr := flag.String("addr", addr, "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	st, closeStore, err := openStore(cfg)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer closeStore()

	app := initializeApp(cfg, st, errorLog, infoLog)

	app.changeFeed = NewChangeFeed(errorLog)
	go app.changeFeed.Run()
	app.listingService.Notifier = app.changeFeed

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:         *flagAddr,
		ErrorLog:     errorLog,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", *flagAddr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}

func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "redis":
		s := store.NewRedis(cfg.Store.Redis.Addr, cfg.Store.Redis.DB)
		return s, func() { s.Close() }, nil
	case "memory":
		return store.NewMemory(), func() {}, nil
	default:
		s, err := store.OpenBolt(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}
}
