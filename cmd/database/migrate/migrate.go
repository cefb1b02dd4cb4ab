package migration

import (
	"TasteBud-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserFavorite{}); err != nil {
		log.Fatalf("Error migrating user favorite database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
