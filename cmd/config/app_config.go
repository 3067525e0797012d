package config

import (
	"Family-Meal-Planner/internal/api/handlers"
	"Family-Meal-Planner/internal/api/routes"
	"Family-Meal-Planner/internal/middleware"
	"Family-Meal-Planner/internal/utils"
	"Family-Meal-Planner/internal/utils/storage"
	"Family-Meal-Planner/pkg/achievement"
	"Family-Meal-Planner/pkg/family"
	"Family-Meal-Planner/pkg/jwt"
	"Family-Meal-Planner/pkg/mealplan"
	"Family-Meal-Planner/pkg/recipe"
	"Family-Meal-Planner/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Mexico_City",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	familyRepository := family.NewFamilyRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	achievementRepository := achievement.NewAchievementRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	familyService := family.NewFamilyService(familyRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, familyRepository, s3)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, familyRepository, recipeRepository)
	achievementService := achievement.NewAchievementService(achievementRepository, mealPlanRepository, familyRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	familyHandler := handlers.NewFamilyHandler(familyService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	achievementHandler := handlers.NewAchievementHandler(achievementService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FamilyHandler:      familyHandler,
		RecipeHandler:      recipeHandler,
		MealPlanHandler:    mealPlanHandler,
		AchievementHandler: achievementHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
