package achievement

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/pkg/family"
	"Family-Meal-Planner/pkg/mealplan"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Family{},
		&entities.FamilyMember{},
		&entities.Recipe{},
		&entities.MealPlan{},
		&entities.MealComment{},
		&entities.Achievement{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()

	user := entities.User{Email: email, Password: "hashed", Name: "Test User", Role: domain.RoleCommentator}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestFamily(t *testing.T, db *gorm.DB, code string, members ...*entities.User) *entities.Family {
	t.Helper()

	fam := entities.Family{Name: "Test Family", Code: code, CreatedBy: members[0].ID}
	if err := db.Create(&fam).Error; err != nil {
		t.Fatalf("failed to create test family: %v", err)
	}
	for i, u := range members {
		role := domain.FamilyRoleMember
		if i == 0 {
			role = domain.FamilyRoleAdmin
		}
		member := entities.FamilyMember{FamilyID: fam.ID, UserID: u.ID, Role: role, JoinedAt: time.Now()}
		if err := db.Create(&member).Error; err != nil {
			t.Fatalf("failed to create test membership: %v", err)
		}
	}
	return &fam
}

func createTestMealPlan(t *testing.T, db *gorm.DB, fam *entities.Family, owner *entities.User) *entities.MealPlan {
	t.Helper()

	rec := entities.Recipe{
		UserID:       owner.ID,
		FamilyID:     &fam.ID,
		Title:        "Test Recipe",
		Ingredients:  "ingredients",
		Instructions: "instructions",
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}

	plan := entities.MealPlan{
		FamilyID:  fam.ID,
		RecipeID:  rec.ID,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		MealType:  domain.MealTypeDinner,
		CreatedBy: owner.ID,
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("failed to create test meal plan: %v", err)
	}
	return &plan
}

func newTestAchievementService(db *gorm.DB) AchievementService {
	return NewAchievementService(
		NewAchievementRepository(db),
		mealplan.NewMealPlanRepository(db),
		family.NewFamilyRepository(db),
	)
}

func TestCreateAchievement(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAchievementService(db)
	ctx := context.Background()

	parent := createTestUser(t, db, "parent@example.com")
	kid := createTestUser(t, db, "kid@example.com")
	fam := createTestFamily(t, db, "AAA-111", parent, kid)
	plan := createTestMealPlan(t, db, fam, parent)

	res, err := service.CreateAchievement(ctx, domain.CreateAchievementRequest{
		MealPlanID: plan.ID.String(),
		StarType:   domain.StarTypeGold,
	}, kid.ID.String())
	if err != nil {
		t.Fatalf("CreateAchievement returned error: %v", err)
	}
	if res.StarType != domain.StarTypeGold {
		t.Errorf("star type = %q, want %q", res.StarType, domain.StarTypeGold)
	}

	t.Run("one star per user per meal", func(t *testing.T) {
		_, err := service.CreateAchievement(ctx, domain.CreateAchievementRequest{
			MealPlanID: plan.ID.String(),
			StarType:   domain.StarTypeSilver,
		}, kid.ID.String())
		if !errors.Is(err, domain.ErrAlreadyAwarded) {
			t.Errorf("duplicate award error = %v, want ErrAlreadyAwarded", err)
		}
	})

	t.Run("another member can still award", func(t *testing.T) {
		if _, err := service.CreateAchievement(ctx, domain.CreateAchievementRequest{
			MealPlanID: plan.ID.String(),
			StarType:   domain.StarTypeBronze,
		}, parent.ID.String()); err != nil {
			t.Errorf("CreateAchievement returned error: %v", err)
		}
	})

	t.Run("plan in another family is invisible", func(t *testing.T) {
		stranger := createTestUser(t, db, "stranger@example.com")
		otherFam := createTestFamily(t, db, "BBB-222", stranger)
		otherPlan := createTestMealPlan(t, db, otherFam, stranger)

		_, err := service.CreateAchievement(ctx, domain.CreateAchievementRequest{
			MealPlanID: otherPlan.ID.String(),
			StarType:   domain.StarTypeGold,
		}, kid.ID.String())
		if !errors.Is(err, domain.ErrMealPlanNotFound) {
			t.Errorf("cross family award error = %v, want ErrMealPlanNotFound", err)
		}
	})
}

func TestGetByMealPlan(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAchievementService(db)
	ctx := context.Background()

	parent := createTestUser(t, db, "parent@example.com")
	kid := createTestUser(t, db, "kid@example.com")
	fam := createTestFamily(t, db, "AAA-111", parent, kid)
	plan := createTestMealPlan(t, db, fam, parent)

	for _, u := range []*entities.User{parent, kid} {
		if _, err := service.CreateAchievement(ctx, domain.CreateAchievementRequest{
			MealPlanID: plan.ID.String(),
			StarType:   domain.StarTypeGold,
		}, u.ID.String()); err != nil {
			t.Fatalf("CreateAchievement returned error: %v", err)
		}
	}

	achievements, err := service.GetByMealPlan(ctx, plan.ID.String(), kid.ID.String())
	if err != nil {
		t.Fatalf("GetByMealPlan returned error: %v", err)
	}
	if len(achievements) != 2 {
		t.Errorf("got %d achievements, want 2", len(achievements))
	}
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAchievementService(db)
	ctx := context.Background()

	parent := createTestUser(t, db, "parent@example.com")
	kid := createTestUser(t, db, "kid@example.com")
	fam := createTestFamily(t, db, "AAA-111", parent, kid)

	stars := []string{domain.StarTypeGold, domain.StarTypeGold, domain.StarTypeSilver, domain.StarTypeBronze}
	for _, star := range stars {
		plan := createTestMealPlan(t, db, fam, parent)
		if _, err := service.CreateAchievement(ctx, domain.CreateAchievementRequest{
			MealPlanID: plan.ID.String(),
			StarType:   star,
		}, kid.ID.String()); err != nil {
			t.Fatalf("CreateAchievement returned error: %v", err)
		}
	}

	stats, err := service.GetStats(ctx, kid.ID.String(), parent.ID.String())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	if stats.TotalStars != 4 {
		t.Errorf("total stars = %d, want 4", stats.TotalStars)
	}
	if stats.GoldStars != 2 || stats.SilverStars != 1 || stats.BronzeStars != 1 {
		t.Errorf("star breakdown = %d/%d/%d, want 2/1/1", stats.GoldStars, stats.SilverStars, stats.BronzeStars)
	}
}

func TestCrossFamilyReads(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAchievementService(db)
	ctx := context.Background()

	parent := createTestUser(t, db, "parent@example.com")
	createTestFamily(t, db, "AAA-111", parent)

	stranger := createTestUser(t, db, "stranger@example.com")
	createTestFamily(t, db, "BBB-222", stranger)

	_, err := service.GetByUser(ctx, stranger.ID.String(), parent.ID.String())
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Errorf("cross family GetByUser error = %v, want ErrUserNotAllowed", err)
	}

	loner := createTestUser(t, db, "loner@example.com")
	_, err = service.GetByUser(ctx, loner.ID.String(), parent.ID.String())
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("GetByUser for familyless target error = %v, want ErrMemberNotFound", err)
	}

	_, err = service.GetStats(ctx, parent.ID.String(), loner.ID.String())
	if !errors.Is(err, domain.ErrNotFamilyMember) {
		t.Errorf("GetStats by familyless caller error = %v, want ErrNotFamilyMember", err)
	}
}
