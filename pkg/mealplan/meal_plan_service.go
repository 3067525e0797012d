package mealplan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/pkg/family"
	"Family-Meal-Planner/pkg/recipe"
)

type (
	MealPlanService interface {
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		GetMealPlanDetail(ctx context.Context, mealPlanID string, userID string) (domain.MealPlanDetailResponse, error)
		GetWeekPlans(ctx context.Context, startDate string, userID string) (domain.WeekPlansResponse, error)
		DeleteMealPlan(ctx context.Context, mealPlanID string, userID string) error
		CreateComment(ctx context.Context, mealPlanID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error)
		GetComments(ctx context.Context, mealPlanID string, userID string) ([]domain.CommentResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		familyRepository   family.FamilyRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, familyRepository family.FamilyRepository, recipeRepository recipe.RecipeRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		familyRepository:   familyRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidDate
	}

	membership, err := s.callerMembership(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrRecipeNotFound
		}
		return domain.MealPlanResponse{}, err
	}
	// only own recipes or recipes shared with this family can be scheduled
	if rec.UserID.String() != userID &&
		(rec.FamilyID == nil || *rec.FamilyID != membership.FamilyID) {
		return domain.MealPlanResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	plan := entities.MealPlan{
		FamilyID:  membership.FamilyID,
		RecipeID:  rec.ID,
		Date:      date,
		MealType:  req.MealType,
		CreatedBy: userUUID,
	}
	if err := s.mealPlanRepository.CreateMealPlan(ctx, &plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	plan.Recipe = rec
	return toMealPlanResponse(&plan), nil
}

// GetMealPlanDetail returns the plan with its comments and awarded stars.
func (s *mealPlanService) GetMealPlanDetail(ctx context.Context, mealPlanID string, userID string) (domain.MealPlanDetailResponse, error) {
	plan, err := s.familyPlan(ctx, mealPlanID, userID)
	if err != nil {
		return domain.MealPlanDetailResponse{}, err
	}

	comments, err := s.mealPlanRepository.GetCommentsByMealPlan(ctx, plan.ID.String())
	if err != nil {
		return domain.MealPlanDetailResponse{}, err
	}
	achievements, err := s.mealPlanRepository.GetAchievementsByMealPlan(ctx, plan.ID.String())
	if err != nil {
		return domain.MealPlanDetailResponse{}, err
	}

	detail := domain.MealPlanDetailResponse{
		MealPlanResponse: toMealPlanResponse(plan),
		Comments:         make([]domain.CommentResponse, 0, len(comments)),
		Achievements:     make([]domain.AchievementResponse, 0, len(achievements)),
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, toCommentResponse(c))
	}
	for _, a := range achievements {
		resp := domain.AchievementResponse{
			ID:         a.ID.String(),
			MealPlanID: a.MealPlanID.String(),
			UserID:     a.UserID.String(),
			StarType:   a.StarType,
			CreatedAt:  a.CreatedAt,
		}
		if a.User != nil {
			resp.UserName = a.User.Name
		}
		detail.Achievements = append(detail.Achievements, resp)
	}
	return detail, nil
}

func (s *mealPlanService) GetWeekPlans(ctx context.Context, startDate string, userID string) (domain.WeekPlansResponse, error) {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return domain.WeekPlansResponse{}, domain.ErrInvalidDate
	}
	end := start.AddDate(0, 0, 6)

	membership, err := s.callerMembership(ctx, userID)
	if err != nil {
		return domain.WeekPlansResponse{}, err
	}

	plans, err := s.mealPlanRepository.GetPlansByDateRange(ctx, membership.FamilyID.String(), start, end)
	if err != nil {
		return domain.WeekPlansResponse{}, err
	}

	result := domain.WeekPlansResponse{
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
		Plans:     make([]domain.MealPlanResponse, 0, len(plans)),
	}
	for _, p := range plans {
		result.Plans = append(result.Plans, toMealPlanResponse(p))
	}
	return result, nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, mealPlanID string, userID string) error {
	if _, err := s.familyPlan(ctx, mealPlanID, userID); err != nil {
		return err
	}
	return s.mealPlanRepository.DeleteMealPlan(ctx, mealPlanID)
}

func (s *mealPlanService) CreateComment(ctx context.Context, mealPlanID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	plan, err := s.familyPlan(ctx, mealPlanID, userID)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	comment := entities.MealComment{
		MealPlanID: plan.ID,
		UserID:     userUUID,
		Comment:    req.Comment,
		Emoji:      req.Emoji,
	}
	if err := s.mealPlanRepository.CreateComment(ctx, &comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(&comment), nil
}

func (s *mealPlanService) GetComments(ctx context.Context, mealPlanID string, userID string) ([]domain.CommentResponse, error) {
	plan, err := s.familyPlan(ctx, mealPlanID, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.mealPlanRepository.GetCommentsByMealPlan(ctx, plan.ID.String())
	if err != nil {
		return nil, err
	}

	result := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, toCommentResponse(c))
	}
	return result, nil
}

func (s *mealPlanService) callerMembership(ctx context.Context, userID string) (*entities.FamilyMember, error) {
	membership, err := s.familyRepository.GetMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFamilyMember
		}
		return nil, err
	}
	return membership, nil
}

// familyPlan loads a meal plan and requires the caller to belong to its family.
func (s *mealPlanService) familyPlan(ctx context.Context, mealPlanID string, userID string) (*entities.MealPlan, error) {
	membership, err := s.callerMembership(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, mealPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	if plan.FamilyID != membership.FamilyID {
		return nil, domain.ErrMealPlanNotFound
	}
	return plan, nil
}

func toMealPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	resp := domain.MealPlanResponse{
		ID:       plan.ID.String(),
		Date:     plan.Date.Format(domain.DateLayout),
		MealType: plan.MealType,
		RecipeID: plan.RecipeID.String(),
	}
	if plan.Recipe != nil {
		resp.Recipe = &domain.RecipeResponse{
			ID:              plan.Recipe.ID.String(),
			UserID:          plan.Recipe.UserID.String(),
			Title:           plan.Recipe.Title,
			Description:     plan.Recipe.Description,
			Category:        plan.Recipe.Category,
			ImageURL:        plan.Recipe.ImageURL,
			PrepTimeMinutes: plan.Recipe.PrepTimeMinutes,
			CookTimeMinutes: plan.Recipe.CookTimeMinutes,
			Servings:        plan.Recipe.Servings,
			IsFavorite:      plan.Recipe.IsFavorite,
			CreatedAt:       plan.Recipe.CreatedAt,
		}
	}
	return resp
}

func toCommentResponse(comment *entities.MealComment) domain.CommentResponse {
	resp := domain.CommentResponse{
		ID:         comment.ID.String(),
		MealPlanID: comment.MealPlanID.String(),
		UserID:     comment.UserID.String(),
		Comment:    comment.Comment,
		Emoji:      comment.Emoji,
		CreatedAt:  comment.CreatedAt,
	}
	if comment.User != nil {
		resp.UserName = comment.User.Name
	}
	return resp
}
