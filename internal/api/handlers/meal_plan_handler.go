package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/internal/api/presenters"
	"Family-Meal-Planner/pkg/mealplan"
)

type (
	MealPlanHandler interface {
		CreateMealPlan(c *fiber.Ctx) error
		GetMealPlanDetail(c *fiber.Ctx) error
		GetWeekPlans(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		CreateComment(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	res, err := h.mealPlanService.CreateMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMealPlan)
}

func (h *mealPlanHandler) GetMealPlanDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealPlanID := c.Params("id")

	res, err := h.mealPlanService.GetMealPlanDetail(c.Context(), mealPlanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}

func (h *mealPlanHandler) GetWeekPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	startDate := c.Query("startDate", time.Now().Format(domain.DateLayout))

	res, err := h.mealPlanService.GetWeekPlans(c.Context(), startDate, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetWeekPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeekPlans)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealPlanID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), mealPlanID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealPlanID := c.Params("id")
	req := new(domain.CreateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	res, err := h.mealPlanService.CreateComment(c.Context(), mealPlanID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *mealPlanHandler) GetComments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealPlanID := c.Params("id")

	res, err := h.mealPlanService.GetComments(c.Context(), mealPlanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}
