package domain

import (
	"errors"
	"time"
)

const (
	StarTypeGold   = "gold"
	StarTypeSilver = "silver"
	StarTypeBronze = "bronze"
)

var (
	MessageSuccessCreateAchievement = "achievement awarded successfully"
	MessageSuccessGetAchievements   = "success get achievements"
	MessageSuccessGetStats          = "success get achievement stats"

	MessageFailedCreateAchievement = "failed to award achievement"
	MessageFailedGetAchievements   = "failed to get achievements"
	MessageFailedGetStats          = "failed to get achievement stats"

	ErrAchievementNotFound = errors.New("achievement not found")
	ErrAlreadyAwarded      = errors.New("achievement already awarded for this meal")
)

type (
	CreateAchievementRequest struct {
		MealPlanID string `json:"mealPlanId" validate:"required,uuid"`
		StarType   string `json:"starType" validate:"required,oneof=gold silver bronze"`
	}

	AchievementResponse struct {
		ID         string    `json:"id"`
		MealPlanID string    `json:"meal_plan_id"`
		UserID     string    `json:"user_id"`
		UserName   string    `json:"user_name,omitempty"`
		StarType   string    `json:"star_type"`
		CreatedAt  time.Time `json:"created_at"`
	}

	AchievementStatsResponse struct {
		UserID      string `json:"user_id"`
		TotalStars  int64  `json:"total_stars"`
		GoldStars   int64  `json:"gold_stars"`
		SilverStars int64  `json:"silver_stars"`
		BronzeStars int64  `json:"bronze_stars"`
	}
)
