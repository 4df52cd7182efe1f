package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wedplan/internal/access"
	"wedplan/internal/auth"
	"wedplan/internal/config"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/handler"
	"wedplan/internal/logging"
	"wedplan/internal/metrics"
	"wedplan/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger zerolog.Logger,
	accessMW *access.Middleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	weddingHandler *handler.WeddingHandler,
	taskHandler *handler.TaskHandler,
	onboardingHandler *handler.OnboardingHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(metrics.Middleware())
	e.Use(middleware.Recover())

	e.HTTPErrorHandler = response.ErrorHandler(logger)
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/create", authHandler.Create)
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/auth/google/token", authHandler.GoogleToken)
	api.POST("/users/auth/refresh", authHandler.Refresh)
	api.POST("/users/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Authentication("Missing or invalid token")
		},
	}))

	// User routes
	secured.GET("/users", userHandler.List, accessMW.AdminOnly)
	secured.GET("/users/:userId", userHandler.Get, accessMW.AdminOnly)
	secured.PATCH("/users/:userId/deactivate", userHandler.Deactivate, accessMW.AdminOnly)
	secured.DELETE("/users/:userId", userHandler.Delete, accessMW.AdminOnly)
	secured.PATCH("/users/complete-onboarding", userHandler.CompleteOnboarding)

	// Wedding routes; everything targeting a specific wedding goes through the
	// access resolver.
	secured.GET("/weddings", weddingHandler.List)
	secured.POST("/weddings", weddingHandler.Create)
	secured.GET("/weddings/by-slug/:slug", weddingHandler.GetBySlug, accessMW.RequireWedding)
	secured.GET("/weddings/:weddingId", weddingHandler.Get, accessMW.RequireWedding)
	secured.POST("/weddings/:weddingId/guests", weddingHandler.AddGuest, accessMW.RequireWedding)
	secured.PATCH("/weddings/:weddingId/guests/:guestId", weddingHandler.UpdateGuest, accessMW.RequireWedding)
	secured.DELETE("/weddings/:weddingId/guests/:guestId", weddingHandler.DeleteGuest, accessMW.RequireWedding)
	secured.PATCH("/weddings/:weddingId/rsvp", weddingHandler.UpdateRSVP, accessMW.RequireWedding)
	secured.PATCH("/weddings/:weddingId/budget", weddingHandler.UpdateBudget, accessMW.RequireWedding)
	secured.PATCH("/weddings/tasks/:taskId", weddingHandler.ToggleTask, accessMW.RequireWedding)

	// Task routes
	secured.POST("/tasks/:weddingId", taskHandler.Create, accessMW.RequireWedding)
	secured.PATCH("/tasks/:taskId", taskHandler.Update, accessMW.RequireWedding)
	secured.PUT("/tasks/:taskId", taskHandler.Replace, accessMW.RequireWedding)
	secured.DELETE("/tasks/:taskId", taskHandler.Delete, accessMW.RequireWedding)

	// Onboarding routes
	secured.GET("/onboarding/progress", onboardingHandler.GetProgress)
	secured.PUT("/onboarding/progress", onboardingHandler.PutProgress)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
