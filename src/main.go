package main

import (
	"context"
	"kakeibo-server/src/api"
	"kakeibo-server/src/config"
	"kakeibo-server/src/db"
	"log"
	"net/http"
)

func main() {
	cfg := config.Load()

	// Schema first, then the pool
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	db.InitCache()

	// Router
	router := api.NewRouter(pool, cfg)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
