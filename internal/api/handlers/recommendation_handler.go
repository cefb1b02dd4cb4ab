package handlers

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/internal/api/presenters"
	"TasteBud-Backend/pkg/recommendation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GetRecommendations(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	prefs := new(domain.UserPreferences)

	if err := c.BodyParser(prefs); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	prefs.ApplyDefaults()
	if err := h.validator.Struct(prefs); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidPreferences, err)
	}

	foods, err := h.recommendationService.GetRecommendations(c.Context(), *prefs)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
