package routes

import (
	"TasteBud-Backend/internal/api/handlers"
	"TasteBud-Backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                   *fiber.App
	FoodHandler           handlers.FoodHandler
	RecommendationHandler handlers.RecommendationHandler
	UserHandler           handlers.UserHandler
	FavoriteHandler       handlers.FavoriteHandler
	Middleware            middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.Foods()
	c.Recommendations()
	c.User()
	c.Favorites()
	c.GuestRoute()
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods")
	{
		foods.Get("", c.FoodHandler.GetFoods)
		foods.Get("/search/:query", c.FoodHandler.SearchFoods)
		foods.Get("/cuisine/:cuisine", c.FoodHandler.GetFoodsByCuisine)
		foods.Get("/:id", c.FoodHandler.GetFoodDetails)
	}
}

func (c *Config) Recommendations() {
	c.App.Post("/api/v1/recommendations", c.RecommendationHandler.GetRecommendations)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/user")
	{
		user.Get("", c.UserHandler.GetUser)
		user.Post("/preferences", c.UserHandler.SavePreferences)
	}
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites")
	{
		favorites.Get("", c.FavoriteHandler.GetFavorites)
		favorites.Post("", c.FavoriteHandler.AddFavorite)
		favorites.Get("/:foodId/check", c.FavoriteHandler.CheckFavorite)
		favorites.Delete("/:foodId", c.FavoriteHandler.RemoveFavorite)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
