package handlers

import (
	"TasteBud-Backend/domain"
	"TasteBud-Backend/internal/api/presenters"
	"TasteBud-Backend/pkg/user"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		GetUser(c *fiber.Ctx) error
		SavePreferences(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	res, err := h.userService.GetOrCreateDemoUser(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

// SavePreferences validates the payload against the same strict schema the
// recommendations endpoint uses, then persists it onto the demo user.
func (h *userHandler) SavePreferences(c *fiber.Ctx) error {
	prefs := new(domain.UserPreferences)

	if err := c.BodyParser(prefs); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	prefs.ApplyDefaults()
	if err := h.validator.Struct(prefs); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidPreferences, err)
	}

	demoUser, err := h.userService.GetOrCreateDemoUser(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSavePreferences, err)
	}

	res, err := h.userService.SavePreferences(c.Context(), demoUser.ID, *prefs)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSavePreferences, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSavePreferences, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSavePreferences)
}
