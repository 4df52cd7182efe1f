package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "wedplan/internal/errors"
	"wedplan/internal/response"
	"wedplan/internal/service"
)

// AuthHandler handles signup, login and token endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateUserRequest represents a signup request.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleTokenRequest carries a Google ID token.
type GoogleTokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthPayload is the data portion of a successful authentication response.
type AuthPayload struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         interface{} `json:"user,omitempty"`
}

// Create godoc
// @Summary Sign up with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Signup data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/create [post]
func (h *AuthHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	accessToken, refreshToken, user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return response.OK(c, http.StatusCreated, AuthPayload{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.OK(c, http.StatusOK, AuthPayload{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// GoogleToken godoc
// @Summary Log in with a Google ID token
// @Tags users
// @Accept json
// @Produce json
// @Param request body GoogleTokenRequest true "Google ID token"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/auth/google/token [post]
func (h *AuthHandler) GoogleToken(c echo.Context) error {
	var req GoogleTokenRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	accessToken, refreshToken, user, err := h.authService.GoogleLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	return response.OK(c, http.StatusOK, AuthPayload{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// Refresh godoc
// @Summary Exchange a refresh token for a new access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, AuthPayload{AccessToken: accessToken})
}

// Logout godoc
// @Summary Invalidate a refresh token
// @Tags users
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} response.Envelope
// @Router /users/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Logged out")
}
