package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Family-Meal-Planner/domain"
)

// errorStatus maps domain errors onto the response taxonomy: validation
// problems stay 400, missing entities 404, permission problems 403 and
// uniqueness violations 409.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFamilyNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrNotFamilyMember),
		errors.Is(err, domain.ErrAchievementNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotFamilyAdmin),
		errors.Is(err, domain.ErrCannotRemoveSelf),
		errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedRecipeAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyInFamily),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyAwarded),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
