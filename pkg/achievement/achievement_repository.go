package achievement

import (
	"context"

	"gorm.io/gorm"

	"Family-Meal-Planner/entities"
)

type (
	AchievementRepository interface {
		CreateAchievement(ctx context.Context, achievement *entities.Achievement) error
		GetByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.Achievement, error)
		GetByUser(ctx context.Context, userID string) ([]*entities.Achievement, error)
		CountByUserAndStar(ctx context.Context, userID string, starType string) (int64, error)
	}

	achievementRepository struct {
		db *gorm.DB
	}
)

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) CreateAchievement(ctx context.Context, achievement *entities.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *achievementRepository) GetByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.Achievement, error) {
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

func (r *achievementRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Achievement, error) {
	var achievements []*entities.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) CountByUserAndStar(ctx context.Context, userID string, starType string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Achievement{}).Where("user_id = ?", userID)
	if starType != "" {
		query = query.Where("star_type = ?", starType)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
