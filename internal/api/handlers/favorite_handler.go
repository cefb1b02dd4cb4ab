package handlers

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/internal/api/presenters"
	"TasteBud-Backend/pkg/favorite"
	"TasteBud-Backend/pkg/user"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	FavoriteHandler interface {
		GetFavorites(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		CheckFavorite(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		userService     user.UserService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, userService user.UserService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		userService:     userService,
		validator:       validator,
	}
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	demoUser, err := h.userService.GetOrCreateDemoUser(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFavorites, err)
	}

	foods, err := h.favoriteService.GetUserFavorites(c.Context(), demoUser.ID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	req := new(domain.AddFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	demoUser, err := h.userService.GetOrCreateDemoUser(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFavorite, err)
	}

	res, err := h.favoriteService.AddFavorite(c.Context(), demoUser.ID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyFavorited) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	foodID, err := strconv.ParseUint(c.Params("foodId"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, domain.ErrInvalidFoodID)
	}

	demoUser, err := h.userService.GetOrCreateDemoUser(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRemoveFavorite, err)
	}

	if err := h.favoriteService.RemoveFavorite(c.Context(), demoUser.ID, uint(foodID)); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFavorite, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *favoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	foodID, err := strconv.ParseUint(c.Params("foodId"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckFavorite, domain.ErrInvalidFoodID)
	}

	demoUser, err := h.userService.GetOrCreateDemoUser(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCheckFavorite, err)
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Context(), demoUser.ID, uint(foodID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCheckFavorite, err)
	}

	return presenters.SuccessResponse(c, domain.CheckFavoriteResponse{IsFavorite: isFavorite}, fiber.StatusOK, domain.MessageSuccessCheckFavorite)
}
