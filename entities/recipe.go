package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"not null" json:"user_id"`
	FamilyID        *uuid.UUID `json:"family_id,omitempty"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	ImageURL        string     `json:"image_url,omitempty"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	Ingredients     string     `gorm:"type:text" json:"ingredients"`
	Instructions    string     `gorm:"type:text" json:"instructions"`
	IsFavorite      bool       `json:"is_favorite"`

	User   *User   `gorm:"foreignKey:UserID"`
	Family *Family `gorm:"foreignKey:FamilyID"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeRating holds one score per user per recipe; re-rating updates the
// existing row instead of inserting a second one.
type RecipeRating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"not null;uniqueIndex:idx_recipe_ratings_recipe_user" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"not null;uniqueIndex:idx_recipe_ratings_recipe_user" json:"user_id"`
	Score    int       `gorm:"not null" json:"score"` // 1..5

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

func (r *RecipeRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
