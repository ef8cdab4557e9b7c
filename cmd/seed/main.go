package main

import (
	"log"

	"karaoke/internal/config"
	"karaoke/internal/database"
)

// Seeds the room and menu catalogs into the configured store. Safe to run
// repeatedly; an already seeded catalog is left alone.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Seeding catalogs...")
	if err := database.Seed(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	log.Println("Done.")
}
