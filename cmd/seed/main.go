// Seeds the store with the initial chefs, menu catalog, and dining tables.
// Run once against a fresh database; it wipes whatever is there.
package main

import (
	"log"

	"restaurant-pos/config"
	"restaurant-pos/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}
	log.Println("✅ Database seeded successfully")
}
