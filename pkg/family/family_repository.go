package family

import (
	"context"

	"gorm.io/gorm"

	"Family-Meal-Planner/entities"
)

type (
	FamilyRepository interface {
		// Transaction runs fn against a repository bound to a single
		// database transaction. Every membership transition goes through
		// here so the uniqueness constraints are checked atomically.
		Transaction(ctx context.Context, fn func(repo FamilyRepository) error) error

		CreateFamily(ctx context.Context, family *entities.Family) error
		GetFamilyByID(ctx context.Context, id string) (*entities.Family, error)
		GetFamilyByCode(ctx context.Context, code string) (*entities.Family, error)
		UpdateFamilyCode(ctx context.Context, familyID string, code string) error
		DeleteFamily(ctx context.Context, familyID string) error

		CreateMember(ctx context.Context, member *entities.FamilyMember) error
		GetMembershipByUserID(ctx context.Context, userID string) (*entities.FamilyMember, error)
		GetMembersByFamilyID(ctx context.Context, familyID string) ([]*entities.FamilyMember, error)
		CountMembers(ctx context.Context, familyID string) (int64, error)
		DeleteMember(ctx context.Context, memberID string) error

		// Cleanup of family-scoped data when the last member leaves.
		DeleteFamilyData(ctx context.Context, familyID string) error
	}

	familyRepository struct {
		db *gorm.DB
	}
)

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) Transaction(ctx context.Context, fn func(repo FamilyRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&familyRepository{db: tx})
	})
}

func (r *familyRepository) CreateFamily(ctx context.Context, family *entities.Family) error {
	return r.db.WithContext(ctx).Create(family).Error
}

func (r *familyRepository) GetFamilyByID(ctx context.Context, id string) (*entities.Family, error) {
	var family entities.Family
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) GetFamilyByCode(ctx context.Context, code string) (*entities.Family, error) {
	var family entities.Family
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) UpdateFamilyCode(ctx context.Context, familyID string, code string) error {
	return r.db.WithContext(ctx).Model(&entities.Family{}).
		Where("id = ?", familyID).
		Update("code", code).Error
}

func (r *familyRepository) DeleteFamily(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).Where("id = ?", familyID).Delete(&entities.Family{}).Error
}

func (r *familyRepository) CreateMember(ctx context.Context, member *entities.FamilyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *familyRepository) GetMembershipByUserID(ctx context.Context, userID string) (*entities.FamilyMember, error) {
	var member entities.FamilyMember
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *familyRepository) GetMembersByFamilyID(ctx context.Context, familyID string) ([]*entities.FamilyMember, error) {
	var members []*entities.FamilyMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("family_id = ?", familyID).
		Order("joined_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *familyRepository) CountMembers(ctx context.Context, familyID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FamilyMember{}).
		Where("family_id = ?", familyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *familyRepository) DeleteMember(ctx context.Context, memberID string) error {
	return r.db.WithContext(ctx).Where("id = ?", memberID).Delete(&entities.FamilyMember{}).Error
}

// DeleteFamilyData removes everything scoped to the family: achievements and
// comments hanging off its meal plans, the meal plans themselves, and the
// family scope on recipes (the recipes stay with their owners).
func (r *familyRepository) DeleteFamilyData(ctx context.Context, familyID string) error {
	db := r.db.WithContext(ctx)

	var planIDs []string
	if err := db.Model(&entities.MealPlan{}).
		Where("family_id = ?", familyID).
		Pluck("id", &planIDs).Error; err != nil {
		return err
	}

	if len(planIDs) > 0 {
		if err := db.Where("meal_plan_id IN ?", planIDs).Delete(&entities.MealComment{}).Error; err != nil {
			return err
		}
	}
	if err := db.Where("family_id = ?", familyID).Delete(&entities.Achievement{}).Error; err != nil {
		return err
	}
	if err := db.Where("family_id = ?", familyID).Delete(&entities.MealPlan{}).Error; err != nil {
		return err
	}
	return db.Model(&entities.Recipe{}).
		Where("family_id = ?", familyID).
		Update("family_id", nil).Error
}
