package mealplan

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Family-Meal-Planner/entities"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetPlansByDateRange(ctx context.Context, familyID string, start, end time.Time) ([]*entities.MealPlan, error)
		DeleteMealPlan(ctx context.Context, id string) error

		CreateComment(ctx context.Context, comment *entities.MealComment) error
		GetCommentsByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.MealComment, error)
		GetAchievementsByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.Achievement, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("id = ?", id).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetPlansByDateRange(ctx context.Context, familyID string, start, end time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("family_id = ? AND date BETWEEN ? AND ?", familyID, start, end).
		Order("date asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// DeleteMealPlan removes the plan together with its comments and awarded stars.
func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", id).Delete(&entities.MealComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_plan_id = ?", id).Delete(&entities.Achievement{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.MealPlan{}).Error
	})
}

func (r *mealPlanRepository) CreateComment(ctx context.Context, comment *entities.MealComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *mealPlanRepository) GetAchievementsByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.Achievement, error) {
	var achievements []*entities.Achievement
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("meal_plan_id = ?", mealPlanID).
		Order("created_at asc").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *mealPlanRepository) GetCommentsByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.MealComment, error) {
	var comments []*entities.MealComment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("meal_plan_id = ?", mealPlanID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
