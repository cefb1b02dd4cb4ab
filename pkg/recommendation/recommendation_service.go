package recommendation

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/entities"
	"TasteBud-Backend/pkg/food"
	"context"
	"sort"
)

type (
	RecommendationService interface {
		GetRecommendations(ctx context.Context, prefs domain.UserPreferences) ([]domain.FoodResponse, error)
	}

	recommendationService struct {
		foodRepository food.FoodRepository
	}
)

func NewRecommendationService(foodRepository food.FoodRepository) RecommendationService {
	return &recommendationService{foodRepository: foodRepository}
}

// GetRecommendations filters the catalog against an already-validated
// preference profile and ranks the survivors by rating, highest first. Ties
// keep the catalog order, so the result is deterministic for a given catalog
// and profile.
func (s *recommendationService) GetRecommendations(ctx context.Context, prefs domain.UserPreferences) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Food, 0, len(foods))
	for _, f := range foods {
		if matchesPreferences(f, prefs) {
			matched = append(matched, f)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	response := make([]domain.FoodResponse, 0, len(matched))
	for _, f := range matched {
		response = append(response, toFoodResponse(f))
	}
	return response, nil
}

// matchesPreferences is conjunctive: a food survives only if it passes every
// preference dimension independently.
func matchesPreferences(food *entities.Food, prefs domain.UserPreferences) bool {
	for _, restriction := range prefs.Dietary {
		switch restriction {
		case "vegetarian":
			if !food.IsVegetarian {
				return false
			}
		case "vegan":
			if !food.IsVegan {
				return false
			}
		case "glutenFree":
			if !food.IsGlutenFree {
				return false
			}
		case "keto":
			if !food.IsKeto {
				return false
			}
		case "lowCarb":
			if !food.IsLowCarb {
				return false
			}
		}
	}

	// An empty cuisine set means no restriction; membership is case-sensitive.
	if len(prefs.Cuisines) > 0 && !containsString(prefs.Cuisines, food.Cuisine) {
		return false
	}

	// Spice tolerance is an inclusive window of one level either side.
	diff := food.SpiceLevel - prefs.SpiceLevelValue()
	if diff < -1 || diff > 1 {
		return false
	}

	if len(prefs.Flavors) > 0 && !intersects(food.Flavors, prefs.Flavors) {
		return false
	}

	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
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
