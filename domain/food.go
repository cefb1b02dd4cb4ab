package domain

import (
	"errors"
)

var (
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessGetFoodDetail   = "food retrieved successfully"
	MessageSuccessSearchFoods     = "search results retrieved successfully"
	MessageSuccessGetFoodsCuisine = "foods by cuisine retrieved successfully"

	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedGetFoodDetail   = "failed to retrieve food"
	MessageFailedSearchFoods     = "failed to search foods"
	MessageFailedGetFoodsCuisine = "failed to retrieve foods by cuisine"

	ErrFoodNotFound  = errors.New("food not found")
	ErrInvalidFoodID = errors.New("invalid food id")
)

type FoodResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Cuisine      string   `json:"cuisine"`
	ImageURL     string   `json:"image_url,omitempty"`
	Rating       int      `json:"rating"`
	CookTime     int      `json:"cook_time"`
	SpiceLevel   int      `json:"spice_level"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	IsKeto       bool     `json:"is_keto"`
	IsLowCarb    bool     `json:"is_low_carb"`
	Flavors      []string `json:"flavors"`
	Ingredients  []string `json:"ingredients"`
}
