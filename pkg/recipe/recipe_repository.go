package recipe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Family-Meal-Planner/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		SearchRecipes(ctx context.Context, userID string, familyID *uuid.UUID, search string, page, limit int) ([]*entities.Recipe, int64, error)

		UpsertRating(ctx context.Context, rating *entities.RecipeRating) error
		GetRatingStats(ctx context.Context, recipeID string) (float64, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeRating{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

// SearchRecipes returns recipes visible to the user: their own plus the ones
// shared with their family.
func (r *recipeRepository) SearchRecipes(ctx context.Context, userID string, familyID *uuid.UUID, search string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if familyID != nil {
		query = query.Where("user_id = ? OR family_id = ?", userID, *familyID)
	} else {
		query = query.Where("user_id = ?", userID)
	}

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// UpsertRating inserts the user's score or updates it when a row for
// (recipe, user) already exists.
func (r *recipeRepository) UpsertRating(ctx context.Context, rating *entities.RecipeRating) error {
	var existing entities.RecipeRating
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", rating.RecipeID, rating.UserID).
		First(&existing).Error
	if err == nil {
		existing.Score = rating.Score
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *recipeRepository) GetRatingStats(ctx context.Context, recipeID string) (float64, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeRating{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeRating{}).
		Where("recipe_id = ?", recipeID).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
