package food

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
	"strings"
)

type (
	FoodService interface {
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id uint) (domain.FoodResponse, error)
		GetFoodsByCuisine(ctx context.Context, cuisine string) ([]domain.FoodResponse, error)
		SearchFoods(ctx context.Context, query string) ([]domain.FoodResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodResponses(foods), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id uint) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) GetFoodsByCuisine(ctx context.Context, cuisine string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Food, 0, len(foods))
	for _, food := range foods {
		if strings.EqualFold(food.Cuisine, cuisine) {
			matched = append(matched, food)
		}
	}

	return toFoodResponses(matched), nil
}

// SearchFoods matches the lowercased query as a substring of a food's name,
// description, cuisine, or any ingredient. An empty query returns an empty
// result rather than the whole catalog.
func (s *foodService) SearchFoods(ctx context.Context, query string) ([]domain.FoodResponse, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.FoodResponse{}, nil
	}

	foods, err := s.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Food, 0, len(foods))
	for _, food := range foods {
		if matchesQuery(food, query) {
			matched = append(matched, food)
		}
	}

	return toFoodResponses(matched), nil
}

func matchesQuery(food *entities.Food, query string) bool {
	if strings.Contains(strings.ToLower(food.Name), query) ||
		strings.Contains(strings.ToLower(food.Description), query) ||
		strings.Contains(strings.ToLower(food.Cuisine), query) {
		return true
	}
	for _, ingredient := range food.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), query) {
			return true
		}
	}
	return false
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:           food.ID,
		Name:         food.Name,
		Description:  food.Description,
		Cuisine:      food.Cuisine,
		ImageURL:     food.ImageURL,
		Rating:       food.Rating,
		CookTime:     food.CookTime,
		SpiceLevel:   food.SpiceLevel,
		IsVegetarian: food.IsVegetarian,
		IsVegan:      food.IsVegan,
		IsGlutenFree: food.IsGlutenFree,
		IsKeto:       food.IsKeto,
		IsLowCarb:    food.IsLowCarb,
		Flavors:      food.Flavors,
		Ingredients:  food.Ingredients,
	}
}

func toFoodResponses(foods []*entities.Food) []domain.FoodResponse {
	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}
	return response
}
