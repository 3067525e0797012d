package migration

import (
	"Family-Meal-Planner/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Family{}); err != nil {
		log.Fatalf("Error migrating family database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FamilyMember{}); err != nil {
		log.Fatalf("Error migrating family member database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeRating{}); err != nil {
		log.Fatalf("Error migrating recipe rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealComment{}); err != nil {
		log.Fatalf("Error migrating meal comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Achievement{}); err != nil {
		log.Fatalf("Error migrating achievement database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
