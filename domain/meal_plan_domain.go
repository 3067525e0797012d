package domain

import (
	"errors"
	"time"
)

const (
	MealTypeLunch  = "almuerzo"
	MealTypeDinner = "cena"

	DateLayout = "2006-01-02"
)

var (
	MessageSuccessCreateMealPlan = "meal plan created successfully"
	MessageSuccessGetMealPlan    = "success get meal plan"
	MessageSuccessGetWeekPlans   = "success get week meal plans"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"
	MessageSuccessCreateComment  = "comment created successfully"
	MessageSuccessGetComments    = "success get comments"

	MessageFailedCreateMealPlan = "failed to create meal plan"
	MessageFailedGetMealPlan    = "failed to get meal plan"
	MessageFailedGetWeekPlans   = "failed to get week meal plans"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"
	MessageFailedCreateComment  = "failed to create comment"
	MessageFailedGetComments    = "failed to get comments"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
)

type (
	CreateMealPlanRequest struct {
		Date     string `json:"fecha" validate:"required"`
		RecipeID string `json:"recetaId" validate:"required,uuid"`
		MealType string `json:"tipoComida" validate:"required,oneof=almuerzo cena"`
	}

	CreateCommentRequest struct {
		Comment string `json:"comment" validate:"required,min=1,max=500"`
		Emoji   string `json:"emoji" validate:"omitempty,max=16"`
	}

	MealPlanResponse struct {
		ID       string          `json:"id"`
		Date     string          `json:"fecha"`
		MealType string          `json:"tipoComida"`
		RecipeID string          `json:"recetaId"`
		Recipe   *RecipeResponse `json:"receta,omitempty"`
	}

	MealPlanDetailResponse struct {
		MealPlanResponse
		Comments     []CommentResponse     `json:"comments"`
		Achievements []AchievementResponse `json:"achievements"`
	}

	CommentResponse struct {
		ID         string    `json:"id"`
		MealPlanID string    `json:"meal_plan_id"`
		UserID     string    `json:"user_id"`
		UserName   string    `json:"user_name,omitempty"`
		Comment    string    `json:"comment"`
		Emoji      string    `json:"emoji,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}

	WeekPlansResponse struct {
		StartDate string             `json:"start_date"`
		EndDate   string             `json:"end_date"`
		Plans     []MealPlanResponse `json:"plans"`
	}
)
