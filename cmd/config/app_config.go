package config

import (
	"TasteBud-Backend/internal/api/handlers"
	"TasteBud-Backend/internal/api/routes"
	"TasteBud-Backend/internal/middleware"
	"TasteBud-Backend/internal/utils"
	"TasteBud-Backend/pkg/favorite"
	"TasteBud-Backend/pkg/food"
	"TasteBud-Backend/pkg/recommendation"
	"TasteBud-Backend/pkg/user"
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	foodRepository := food.NewFoodRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository)
	recommendationService := recommendation.NewRecommendationService(foodRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, foodService)
	userService := user.NewUserService(userRepository, utils.GetConfig("DEMO_USERNAME"))

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, userService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		FoodHandler:           foodHandler,
		RecommendationHandler: recommendationHandler,
		UserHandler:           userHandler,
		FavoriteHandler:       favoriteHandler,
		Middleware:            middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
