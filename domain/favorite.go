package domain

import (
	"errors"
)

var (
	MessageSuccessGetFavorites   = "favorites retrieved successfully"
	MessageSuccessAddFavorite    = "favorite added successfully"
	MessageSuccessRemoveFavorite = "favorite removed successfully"
	MessageSuccessCheckFavorite  = "favorite status retrieved successfully"

	MessageFailedGetFavorites   = "failed to retrieve favorites"
	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedCheckFavorite  = "failed to check favorite status"

	ErrAlreadyFavorited = errors.New("food is already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type (
	AddFavoriteRequest struct {
		FoodID uint `json:"food_id" validate:"required,min=1"`
	}

	FavoriteResponse struct {
		ID     uint `json:"id"`
		UserID uint `json:"user_id"`
		FoodID uint `json:"food_id"`
	}

	CheckFavoriteResponse struct {
		IsFavorite bool `json:"is_favorite"`
	}
)
