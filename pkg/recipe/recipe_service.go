package recipe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/internal/utils/storage"
	"Family-Meal-Planner/pkg/family"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, search string, page, limit int, userID string) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		familyRepository family.FamilyRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, familyRepository family.FamilyRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		familyRepository: familyRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe := entities.Recipe{
		UserID:          userUUID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
	}

	if req.ShareWithFamily {
		familyID, err := s.callerFamilyID(ctx, userID)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.FamilyID = familyID
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.toDetailResponse(ctx, &recipe)
}

func (s *recipeService) GetRecipes(ctx context.Context, search string, page, limit int, userID string) ([]domain.RecipeResponse, int64, error) {
	familyID, err := s.callerFamilyIDOrNil(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	recipes, count, err := s.recipeRepository.SearchRecipes(ctx, userID, familyID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		resp := s.toResponse(ctx, r)
		result = append(result, resp)
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.visibleRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return s.toDetailResponse(ctx, recipe)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) error {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Category != "" {
		recipe.Category = req.Category
	}
	if req.PrepTimeMinutes > 0 {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes > 0 {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.Ingredients != "" {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}
	if req.IsFavorite != nil {
		recipe.IsFavorite = *req.IsFavorite
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.ownedRecipe(ctx, recipeID, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) error {
	recipe, err := s.visibleRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	rating := entities.RecipeRating{
		RecipeID: recipe.ID,
		UserID:   userUUID,
		Score:    req.Score,
	}
	return s.recipeRepository.UpsertRating(ctx, &rating)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (string, error) {
	recipe, err := s.ownedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, "recipes", req.Image)
	if err != nil {
		return "", err
	}

	recipe.ImageURL = url
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return url, nil
}

// ownedRecipe loads a recipe and requires the caller to be its owner.
func (s *recipeService) ownedRecipe(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

// visibleRecipe loads a recipe the caller may read: their own, or one shared
// with their family.
func (s *recipeService) visibleRecipe(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID.String() == userID {
		return recipe, nil
	}
	if recipe.FamilyID != nil {
		familyID, err := s.callerFamilyIDOrNil(ctx, userID)
		if err != nil {
			return nil, err
		}
		if familyID != nil && *familyID == *recipe.FamilyID {
			return recipe, nil
		}
	}
	return nil, domain.ErrUnauthorizedRecipeAccess
}

func (s *recipeService) callerFamilyID(ctx context.Context, userID string) (*uuid.UUID, error) {
	membership, err := s.familyRepository.GetMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFamilyMember
		}
		return nil, err
	}
	return &membership.FamilyID, nil
}

func (s *recipeService) callerFamilyIDOrNil(ctx context.Context, userID string) (*uuid.UUID, error) {
	familyID, err := s.callerFamilyID(ctx, userID)
	if errors.Is(err, domain.ErrNotFamilyMember) {
		return nil, nil
	}
	return familyID, err
}

func (s *recipeService) toResponse(ctx context.Context, recipe *entities.Recipe) domain.RecipeResponse {
	resp := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Category:        recipe.Category,
		ImageURL:        recipe.ImageURL,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		IsFavorite:      recipe.IsFavorite,
		CreatedAt:       recipe.CreatedAt,
	}

	avg, count, err := s.recipeRepository.GetRatingStats(ctx, recipe.ID.String())
	if err == nil {
		resp.AverageRating = avg
		resp.RatingCount = count
	}
	return resp
}

func (s *recipeService) toDetailResponse(ctx context.Context, recipe *entities.Recipe) (domain.RecipeDetailResponse, error) {
	return domain.RecipeDetailResponse{
		RecipeResponse: s.toResponse(ctx, recipe),
		Ingredients:    recipe.Ingredients,
		Instructions:   recipe.Instructions,
	}, nil
}
