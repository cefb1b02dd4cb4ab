package handlers

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/internal/api/presenters"
	"TasteBud-Backend/pkg/food"
	"errors"
	"github.com/gofiber/fiber/v2"
	"net/url"
	"strconv"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		SearchFoods(c *fiber.Ctx) error
		GetFoodsByCuisine(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
	}
)

func NewFoodHandler(foodService food.FoodService) FoodHandler {
	return &foodHandler{foodService: foodService}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodDetail, domain.ErrInvalidFoodID)
	}

	item, err := h.foodService.GetFoodByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodDetail, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodDetail)
}

func (h *foodHandler) SearchFoods(c *fiber.Ctx) error {
	query, err := url.PathUnescape(c.Params("query"))
	if err != nil {
		query = c.Params("query")
	}

	foods, err := h.foodService.SearchFoods(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearchFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessSearchFoods)
}

func (h *foodHandler) GetFoodsByCuisine(c *fiber.Ctx) error {
	cuisine, err := url.PathUnescape(c.Params("cuisine"))
	if err != nil {
		cuisine = c.Params("cuisine")
	}

	foods, err := h.foodService.GetFoodsByCuisine(c.Context(), cuisine)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodsCuisine, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoodsCuisine)
}
