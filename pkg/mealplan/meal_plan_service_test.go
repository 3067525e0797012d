package mealplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/pkg/family"
	"Family-Meal-Planner/pkg/recipe"
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
		&entities.RecipeRating{},
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

	user := entities.User{Email: email, Password: "hashed", Name: "Test User", Role: domain.RoleCreator}
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

func createTestRecipe(t *testing.T, db *gorm.DB, owner *entities.User, fam *entities.Family, title string) *entities.Recipe {
	t.Helper()

	rec := entities.Recipe{
		UserID:       owner.ID,
		Title:        title,
		Ingredients:  "ingredients",
		Instructions: "instructions",
	}
	if fam != nil {
		rec.FamilyID = &fam.ID
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return &rec
}

func newTestMealPlanService(db *gorm.DB) MealPlanService {
	return NewMealPlanService(
		NewMealPlanRepository(db),
		family.NewFamilyRepository(db),
		recipe.NewRecipeRepository(db),
	)
}

func TestCreateMealPlan(t *testing.T) {
	db := setupTestDB(t)
	service := newTestMealPlanService(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	fam := createTestFamily(t, db, "AAA-111", creator)
	rec := createTestRecipe(t, db, creator, fam, "Tacos")

	t.Run("schedules a shared recipe", func(t *testing.T) {
		res, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
			Date:     "2026-09-01",
			RecipeID: rec.ID.String(),
			MealType: domain.MealTypeLunch,
		}, creator.ID.String())
		if err != nil {
			t.Fatalf("CreateMealPlan returned error: %v", err)
		}
		if res.Date != "2026-09-01" {
			t.Errorf("date = %q, want 2026-09-01", res.Date)
		}
		if res.MealType != domain.MealTypeLunch {
			t.Errorf("meal type = %q, want %q", res.MealType, domain.MealTypeLunch)
		}
		if res.Recipe == nil || res.Recipe.Title != "Tacos" {
			t.Errorf("response missing embedded recipe")
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
			Date:     "01/09/2026",
			RecipeID: rec.ID.String(),
			MealType: domain.MealTypeDinner,
		}, creator.ID.String())
		if !errors.Is(err, domain.ErrInvalidDate) {
			t.Errorf("CreateMealPlan error = %v, want ErrInvalidDate", err)
		}
	})

	t.Run("rejects a recipe the family cannot see", func(t *testing.T) {
		stranger := createTestUser(t, db, "stranger@example.com")
		otherFam := createTestFamily(t, db, "BBB-222", stranger)
		foreign := createTestRecipe(t, db, stranger, otherFam, "Foreign dish")

		_, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
			Date:     "2026-09-02",
			RecipeID: foreign.ID.String(),
			MealType: domain.MealTypeDinner,
		}, creator.ID.String())
		if !errors.Is(err, domain.ErrUnauthorizedRecipeAccess) {
			t.Errorf("CreateMealPlan error = %v, want ErrUnauthorizedRecipeAccess", err)
		}
	})

	t.Run("requires family membership", func(t *testing.T) {
		loner := createTestUser(t, db, "loner@example.com")
		_, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
			Date:     "2026-09-03",
			RecipeID: rec.ID.String(),
			MealType: domain.MealTypeLunch,
		}, loner.ID.String())
		if !errors.Is(err, domain.ErrNotFamilyMember) {
			t.Errorf("CreateMealPlan error = %v, want ErrNotFamilyMember", err)
		}
	})
}

func TestGetWeekPlans(t *testing.T) {
	db := setupTestDB(t)
	service := newTestMealPlanService(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	fam := createTestFamily(t, db, "AAA-111", creator)
	rec := createTestRecipe(t, db, creator, fam, "Sopa")

	dates := []string{"2026-09-07", "2026-09-10", "2026-09-13", "2026-09-14"}
	for _, d := range dates {
		if _, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
			Date:     d,
			RecipeID: rec.ID.String(),
			MealType: domain.MealTypeDinner,
		}, creator.ID.String()); err != nil {
			t.Fatalf("CreateMealPlan(%s) returned error: %v", d, err)
		}
	}

	// the window is start plus six days inclusive, so 09-14 falls outside
	week, err := service.GetWeekPlans(ctx, "2026-09-07", creator.ID.String())
	if err != nil {
		t.Fatalf("GetWeekPlans returned error: %v", err)
	}
	if week.StartDate != "2026-09-07" || week.EndDate != "2026-09-13" {
		t.Errorf("window = %s..%s, want 2026-09-07..2026-09-13", week.StartDate, week.EndDate)
	}
	if len(week.Plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(week.Plans))
	}
	for _, p := range week.Plans {
		if p.Date == "2026-09-14" {
			t.Errorf("plan outside the week window leaked into the response")
		}
	}
}

func TestMealPlanFamilyScope(t *testing.T) {
	db := setupTestDB(t)
	service := newTestMealPlanService(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	fam := createTestFamily(t, db, "AAA-111", creator)
	rec := createTestRecipe(t, db, creator, fam, "Mole")

	plan, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Date:     "2026-09-01",
		RecipeID: rec.ID.String(),
		MealType: domain.MealTypeLunch,
	}, creator.ID.String())
	if err != nil {
		t.Fatalf("CreateMealPlan returned error: %v", err)
	}

	// a member of another family must not even learn the plan exists
	stranger := createTestUser(t, db, "stranger@example.com")
	createTestFamily(t, db, "BBB-222", stranger)

	_, err = service.GetComments(ctx, plan.ID, stranger.ID.String())
	if !errors.Is(err, domain.ErrMealPlanNotFound) {
		t.Errorf("cross family GetComments error = %v, want ErrMealPlanNotFound", err)
	}

	err = service.DeleteMealPlan(ctx, plan.ID, stranger.ID.String())
	if !errors.Is(err, domain.ErrMealPlanNotFound) {
		t.Errorf("cross family DeleteMealPlan error = %v, want ErrMealPlanNotFound", err)
	}
}

func TestComments(t *testing.T) {
	db := setupTestDB(t)
	service := newTestMealPlanService(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	commentator := createTestUser(t, db, "commentator@example.com")
	fam := createTestFamily(t, db, "AAA-111", creator, commentator)
	rec := createTestRecipe(t, db, creator, fam, "Tamales")

	plan, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Date:     "2026-09-01",
		RecipeID: rec.ID.String(),
		MealType: domain.MealTypeDinner,
	}, creator.ID.String())
	if err != nil {
		t.Fatalf("CreateMealPlan returned error: %v", err)
	}

	created, err := service.CreateComment(ctx, plan.ID, domain.CreateCommentRequest{
		Comment: "Que rico!",
		Emoji:   "😋",
	}, commentator.ID.String())
	if err != nil {
		t.Fatalf("CreateComment returned error: %v", err)
	}
	if created.Comment != "Que rico!" || created.Emoji != "😋" {
		t.Errorf("comment = %+v, want text and emoji echoed back", created)
	}

	comments, err := service.GetComments(ctx, plan.ID, creator.ID.String())
	if err != nil {
		t.Fatalf("GetComments returned error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].UserName != "Test User" {
		t.Errorf("comment user name = %q, want preloaded user", comments[0].UserName)
	}
}

func TestGetMealPlanDetail(t *testing.T) {
	db := setupTestDB(t)
	service := newTestMealPlanService(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	fam := createTestFamily(t, db, "AAA-111", creator)
	rec := createTestRecipe(t, db, creator, fam, "Birria")

	plan, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Date:     "2026-09-01",
		RecipeID: rec.ID.String(),
		MealType: domain.MealTypeLunch,
	}, creator.ID.String())
	if err != nil {
		t.Fatalf("CreateMealPlan returned error: %v", err)
	}
	if _, err := service.CreateComment(ctx, plan.ID, domain.CreateCommentRequest{Comment: "delicioso"}, creator.ID.String()); err != nil {
		t.Fatalf("CreateComment returned error: %v", err)
	}

	star := entities.Achievement{UserID: creator.ID, FamilyID: fam.ID, StarType: domain.StarTypeGold}
	star.MealPlanID = uuidMustParse(t, plan.ID)
	if err := db.Create(&star).Error; err != nil {
		t.Fatalf("failed to create achievement: %v", err)
	}

	detail, err := service.GetMealPlanDetail(ctx, plan.ID, creator.ID.String())
	if err != nil {
		t.Fatalf("GetMealPlanDetail returned error: %v", err)
	}
	if detail.Recipe == nil || detail.Recipe.Title != "Birria" {
		t.Errorf("detail missing embedded recipe")
	}
	if len(detail.Comments) != 1 {
		t.Errorf("got %d comments, want 1", len(detail.Comments))
	}
	if len(detail.Achievements) != 1 || detail.Achievements[0].StarType != domain.StarTypeGold {
		t.Errorf("achievements = %+v, want one gold star", detail.Achievements)
	}
}

func uuidMustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", s, err)
	}
	return id
}

func TestDeleteMealPlanCascades(t *testing.T) {
	db := setupTestDB(t)
	service := newTestMealPlanService(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@example.com")
	fam := createTestFamily(t, db, "AAA-111", creator)
	rec := createTestRecipe(t, db, creator, fam, "Chilaquiles")

	plan, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		Date:     "2026-09-01",
		RecipeID: rec.ID.String(),
		MealType: domain.MealTypeLunch,
	}, creator.ID.String())
	if err != nil {
		t.Fatalf("CreateMealPlan returned error: %v", err)
	}
	if _, err := service.CreateComment(ctx, plan.ID, domain.CreateCommentRequest{Comment: "rico"}, creator.ID.String()); err != nil {
		t.Fatalf("CreateComment returned error: %v", err)
	}

	if err := service.DeleteMealPlan(ctx, plan.ID, creator.ID.String()); err != nil {
		t.Fatalf("DeleteMealPlan returned error: %v", err)
	}

	var comments int64
	db.Model(&entities.MealComment{}).Where("meal_plan_id = ?", plan.ID).Count(&comments)
	if comments != 0 {
		t.Errorf("comments survived meal plan deletion")
	}

	_, err = service.GetComments(ctx, plan.ID, creator.ID.String())
	if !errors.Is(err, domain.ErrMealPlanNotFound) {
		t.Errorf("deleted plan GetComments error = %v, want ErrMealPlanNotFound", err)
	}
}
