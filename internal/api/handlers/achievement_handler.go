package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/internal/api/presenters"
	"Family-Meal-Planner/pkg/achievement"
)

type (
	AchievementHandler interface {
		CreateAchievement(c *fiber.Ctx) error
		GetByMealPlan(c *fiber.Ctx) error
		GetByUser(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	achievementHandler struct {
		achievementService achievement.AchievementService
		validator          *validator.Validate
	}
)

func NewAchievementHandler(achievementService achievement.AchievementService, validator *validator.Validate) AchievementHandler {
	return &achievementHandler{
		achievementService: achievementService,
		validator:          validator,
	}
}

func (h *achievementHandler) CreateAchievement(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateAchievementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAchievement, err)
	}

	res, err := h.achievementService.CreateAchievement(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateAchievement, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAchievement)
}

func (h *achievementHandler) GetByMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealPlanID := c.Params("id")

	res, err := h.achievementService.GetByMealPlan(c.Context(), mealPlanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetAchievements, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAchievements)
}

func (h *achievementHandler) GetByUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetUserID := c.Params("id")

	res, err := h.achievementService.GetByUser(c.Context(), targetUserID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetAchievements, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAchievements)
}

func (h *achievementHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetUserID := c.Params("id")

	res, err := h.achievementService.GetStats(c.Context(), targetUserID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
