package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FamilyID  uuid.UUID `gorm:"not null" json:"family_id"`
	RecipeID  uuid.UUID `gorm:"not null" json:"recipe_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	MealType  string    `gorm:"not null" json:"meal_type"` // "almuerzo" or "cena"
	CreatedBy uuid.UUID `json:"created_by"`

	Recipe   *Recipe        `gorm:"foreignKey:RecipeID"`
	Family   *Family        `gorm:"foreignKey:FamilyID"`
	Comments []*MealComment `gorm:"foreignKey:MealPlanID"`
	Timestamp
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type MealComment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MealPlanID uuid.UUID `gorm:"not null" json:"meal_plan_id"`
	UserID     uuid.UUID `gorm:"not null" json:"user_id"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	Emoji      string    `json:"emoji,omitempty"`

	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID"`
	User     *User     `gorm:"foreignKey:UserID"`
	Timestamp
}

func (c *MealComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
