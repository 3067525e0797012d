package achievement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/pkg/family"
	"Family-Meal-Planner/pkg/mealplan"
)

type (
	AchievementService interface {
		CreateAchievement(ctx context.Context, req domain.CreateAchievementRequest, userID string) (domain.AchievementResponse, error)
		GetByMealPlan(ctx context.Context, mealPlanID string, userID string) ([]domain.AchievementResponse, error)
		GetByUser(ctx context.Context, targetUserID string, userID string) ([]domain.AchievementResponse, error)
		GetStats(ctx context.Context, targetUserID string, userID string) (domain.AchievementStatsResponse, error)
	}

	achievementService struct {
		achievementRepository AchievementRepository
		mealPlanRepository    mealplan.MealPlanRepository
		familyRepository      family.FamilyRepository
	}
)

func NewAchievementService(achievementRepository AchievementRepository, mealPlanRepository mealplan.MealPlanRepository, familyRepository family.FamilyRepository) AchievementService {
	return &achievementService{
		achievementRepository: achievementRepository,
		mealPlanRepository:    mealPlanRepository,
		familyRepository:      familyRepository,
	}
}

func (s *achievementService) CreateAchievement(ctx context.Context, req domain.CreateAchievementRequest, userID string) (domain.AchievementResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AchievementResponse{}, domain.ErrParseUUID
	}

	membership, err := s.callerMembership(ctx, userID)
	if err != nil {
		return domain.AchievementResponse{}, err
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, req.MealPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AchievementResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.AchievementResponse{}, err
	}
	if plan.FamilyID != membership.FamilyID {
		return domain.AchievementResponse{}, domain.ErrMealPlanNotFound
	}

	achievement := entities.Achievement{
		MealPlanID: plan.ID,
		UserID:     userUUID,
		FamilyID:   plan.FamilyID,
		StarType:   req.StarType,
	}
	if err := s.achievementRepository.CreateAchievement(ctx, &achievement); err != nil {
		// one star per user per meal plan
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AchievementResponse{}, domain.ErrAlreadyAwarded
		}
		return domain.AchievementResponse{}, err
	}

	return toAchievementResponse(&achievement), nil
}

func (s *achievementService) GetByMealPlan(ctx context.Context, mealPlanID string, userID string) ([]domain.AchievementResponse, error) {
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

	achievements, err := s.achievementRepository.GetByMealPlan(ctx, mealPlanID)
	if err != nil {
		return nil, err
	}
	return toAchievementResponses(achievements), nil
}

func (s *achievementService) GetByUser(ctx context.Context, targetUserID string, userID string) ([]domain.AchievementResponse, error) {
	if err := s.sameFamily(ctx, targetUserID, userID); err != nil {
		return nil, err
	}

	achievements, err := s.achievementRepository.GetByUser(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return toAchievementResponses(achievements), nil
}

func (s *achievementService) GetStats(ctx context.Context, targetUserID string, userID string) (domain.AchievementStatsResponse, error) {
	if err := s.sameFamily(ctx, targetUserID, userID); err != nil {
		return domain.AchievementStatsResponse{}, err
	}

	stats := domain.AchievementStatsResponse{UserID: targetUserID}
	var err error
	if stats.TotalStars, err = s.achievementRepository.CountByUserAndStar(ctx, targetUserID, ""); err != nil {
		return domain.AchievementStatsResponse{}, err
	}
	if stats.GoldStars, err = s.achievementRepository.CountByUserAndStar(ctx, targetUserID, domain.StarTypeGold); err != nil {
		return domain.AchievementStatsResponse{}, err
	}
	if stats.SilverStars, err = s.achievementRepository.CountByUserAndStar(ctx, targetUserID, domain.StarTypeSilver); err != nil {
		return domain.AchievementStatsResponse{}, err
	}
	if stats.BronzeStars, err = s.achievementRepository.CountByUserAndStar(ctx, targetUserID, domain.StarTypeBronze); err != nil {
		return domain.AchievementStatsResponse{}, err
	}
	return stats, nil
}

func (s *achievementService) callerMembership(ctx context.Context, userID string) (*entities.FamilyMember, error) {
	membership, err := s.familyRepository.GetMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFamilyMember
		}
		return nil, err
	}
	return membership, nil
}

// sameFamily allows reading another user's stars only within one family.
func (s *achievementService) sameFamily(ctx context.Context, targetUserID string, userID string) error {
	caller, err := s.callerMembership(ctx, userID)
	if err != nil {
		return err
	}
	if targetUserID == userID {
		return nil
	}

	target, err := s.familyRepository.GetMembershipByUserID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}
	if target.FamilyID != caller.FamilyID {
		return domain.ErrUserNotAllowed
	}
	return nil
}

func toAchievementResponse(a *entities.Achievement) domain.AchievementResponse {
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
	return resp
}

func toAchievementResponses(achievements []*entities.Achievement) []domain.AchievementResponse {
	result := make([]domain.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		result = append(result, toAchievementResponse(a))
	}
	return result
}
