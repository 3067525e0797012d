package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is a star awarded by a family member to a planned meal.
// One star per user per meal plan.
type Achievement struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MealPlanID uuid.UUID `gorm:"not null;uniqueIndex:idx_achievements_meal_user" json:"meal_plan_id"`
	UserID     uuid.UUID `gorm:"not null;uniqueIndex:idx_achievements_meal_user" json:"user_id"`
	FamilyID   uuid.UUID `gorm:"not null" json:"family_id"`
	StarType   string    `gorm:"not null" json:"star_type"` // "gold", "silver" or "bronze"

	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID"`
	User     *User     `gorm:"foreignKey:UserID"`
	Timestamp
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
