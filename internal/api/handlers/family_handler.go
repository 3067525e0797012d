package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/internal/api/presenters"
	"Family-Meal-Planner/pkg/family"
)

type (
	FamilyHandler interface {
		CreateFamily(c *fiber.Ctx) error
		JoinFamily(c *fiber.Ctx) error
		LeaveFamily(c *fiber.Ctx) error
		GetMyFamily(c *fiber.Ctx) error
		GetMembers(c *fiber.Ctx) error
		RemoveMember(c *fiber.Ctx) error
		RegenerateCode(c *fiber.Ctx) error
		SendInvite(c *fiber.Ctx) error
	}

	familyHandler struct {
		familyService family.FamilyService
		validator     *validator.Validate
	}
)

func NewFamilyHandler(familyService family.FamilyService, validator *validator.Validate) FamilyHandler {
	return &familyHandler{
		familyService: familyService,
		validator:     validator,
	}
}

func (h *familyHandler) CreateFamily(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFamilyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFamily, err)
	}

	res, err := h.familyService.CreateFamily(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateFamily, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFamily)
}

func (h *familyHandler) JoinFamily(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.JoinFamilyRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinFamily, err)
	}

	res, err := h.familyService.JoinFamily(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedJoinFamily, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessJoinFamily)
}

func (h *familyHandler) LeaveFamily(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.familyService.LeaveFamily(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedLeaveFamily, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLeaveFamily)
}

func (h *familyHandler) GetMyFamily(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.familyService.GetMyFamily(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFamily, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFamily)
}

func (h *familyHandler) GetMembers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.familyService.GetMembers(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMembers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMembers)
}

func (h *familyHandler) RemoveMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetUserID := c.Params("id")

	if err := h.familyService.RemoveMember(c.Context(), targetUserID, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRemoveMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMember)
}

func (h *familyHandler) RegenerateCode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.familyService.RegenerateCode(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRegenerateCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRegenerateCode)
}

func (h *familyHandler) SendInvite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendInviteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendInvite, err)
	}

	if err := h.familyService.SendInvite(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSendInvite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendInvite)
}
