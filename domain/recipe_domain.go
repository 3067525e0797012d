package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessRateRecipe      = "recipe rated successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedRateRecipe      = "failed to rate recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

type (
	CreateRecipeRequest struct {
		Title           string `json:"title" validate:"required,min=2,max=200"`
		Description     string `json:"description" validate:"omitempty,max=2000"`
		Category        string `json:"category" validate:"omitempty,max=100"`
		PrepTimeMinutes int    `json:"prep_time_minutes" validate:"omitempty,min=0,max=1440"`
		CookTimeMinutes int    `json:"cook_time_minutes" validate:"omitempty,min=0,max=1440"`
		Servings        int    `json:"servings" validate:"omitempty,min=1,max=50"`
		Ingredients     string `json:"ingredients" validate:"required"`
		Instructions    string `json:"instructions" validate:"required"`
		ShareWithFamily bool   `json:"share_with_family"`
	}

	UpdateRecipeRequest struct {
		Title           string `json:"title" validate:"omitempty,min=2,max=200"`
		Description     string `json:"description" validate:"omitempty,max=2000"`
		Category        string `json:"category" validate:"omitempty,max=100"`
		PrepTimeMinutes int    `json:"prep_time_minutes" validate:"omitempty,min=0,max=1440"`
		CookTimeMinutes int    `json:"cook_time_minutes" validate:"omitempty,min=0,max=1440"`
		Servings        int    `json:"servings" validate:"omitempty,min=1,max=50"`
		Ingredients     string `json:"ingredients" validate:"omitempty"`
		Instructions    string `json:"instructions" validate:"omitempty"`
		IsFavorite      *bool  `json:"is_favorite" validate:"omitempty"`
	}

	RateRecipeRequest struct {
		Score int `json:"score" validate:"required,min=1,max=5"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		Title           string    `json:"title"`
		Description     string    `json:"description,omitempty"`
		Category        string    `json:"category,omitempty"`
		ImageURL        string    `json:"image_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		IsFavorite      bool      `json:"is_favorite"`
		AverageRating   float64   `json:"average_rating"`
		RatingCount     int64     `json:"rating_count"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients  string `json:"ingredients"`
		Instructions string `json:"instructions"`
	}
)
