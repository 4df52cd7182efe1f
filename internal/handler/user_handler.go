package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wedplan/internal/access"
	"wedplan/internal/response"
	"wedplan/internal/service"
)

// UserHandler handles user administration and onboarding completion.
type UserHandler struct {
	userService       service.UserService
	onboardingService service.OnboardingService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, onboardingService service.OnboardingService) *UserHandler {
	return &UserHandler{userService: userService, onboardingService: onboardingService}
}

// List godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, users)
}

// Get godoc
// @Summary Get a user by id (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}

// Deactivate godoc
// @Summary Soft-disable a user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{userId}/deactivate [patch]
func (h *UserHandler) Deactivate(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.userService.Deactivate(c.Request().Context(), userID); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "User deactivated")
}

// Delete godoc
// @Summary Delete a user outright (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), userID); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "User deleted")
}

// CompleteOnboarding godoc
// @Summary Create the wedding from the caller's onboarding draft
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/complete-onboarding [patch]
func (h *UserHandler) CompleteOnboarding(c echo.Context) error {
	callerID, err := access.CallerID(c)
	if err != nil {
		return err
	}

	wedding, err := h.onboardingService.Complete(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, wedding)
}
