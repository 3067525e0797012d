package routes

import (
	"Family-Meal-Planner/internal/api/handlers"
	"Family-Meal-Planner/internal/middleware"
	"Family-Meal-Planner/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FamilyHandler      handlers.FamilyHandler
	RecipeHandler      handlers.RecipeHandler
	MealPlanHandler    handlers.MealPlanHandler
	AchievementHandler handlers.AchievementHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Family()
	c.Recipes()
	c.MealPlans()
	c.Achievements()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Post("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ChangePassword)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Family() {
	family := c.App.Group("/api/families", c.Middleware.AuthMiddleware(c.JWTService))

	family.Post("", c.FamilyHandler.CreateFamily)
	family.Post("/join", c.FamilyHandler.JoinFamily)
	family.Post("/leave", c.FamilyHandler.LeaveFamily)
	family.Get("/me", c.FamilyHandler.GetMyFamily)
	family.Get("/members", c.FamilyHandler.GetMembers)
	family.Delete("/members/:id", c.FamilyHandler.RemoveMember)
	family.Post("/regenerate-code", c.FamilyHandler.RegenerateCode)
	family.Post("/invite", c.FamilyHandler.SendInvite)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

	// mutations require a creator account
	recipes.Post("", c.Middleware.CreatorOnly(), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.CreatorOnly(), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.CreatorOnly(), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/image", c.Middleware.CreatorOnly(), c.RecipeHandler.UploadRecipeImage)

	// any family member can rate
	recipes.Post("/:id/rate", c.RecipeHandler.RateRecipe)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))

	mealPlans.Post("", c.Middleware.CreatorOnly(), c.MealPlanHandler.CreateMealPlan)
	mealPlans.Get("/week", c.MealPlanHandler.GetWeekPlans)
	mealPlans.Get("/:id", c.MealPlanHandler.GetMealPlanDetail)
	mealPlans.Delete("/:id", c.Middleware.CreatorOnly(), c.MealPlanHandler.DeleteMealPlan)
	mealPlans.Post("/:id/comments", c.MealPlanHandler.CreateComment)
	mealPlans.Get("/:id/comments", c.MealPlanHandler.GetComments)
}

func (c *Config) Achievements() {
	achievements := c.App.Group("/api/achievements", c.Middleware.AuthMiddleware(c.JWTService))

	achievements.Post("", c.AchievementHandler.CreateAchievement)
	achievements.Get("/meal/:id", c.AchievementHandler.GetByMealPlan)
	achievements.Get("/user/:id", c.AchievementHandler.GetByUser)
	achievements.Get("/stats/:id", c.AchievementHandler.GetStats)
}
