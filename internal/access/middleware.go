package access

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"wedplan/internal/auth"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository"
)

const grantContextKey = "wedding_grant"

// CallerID extracts the authenticated user's ID from the JWT placed on the
// context by the echo-jwt middleware.
func CallerID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, apperrors.Authentication("Missing or invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == 0 {
		return 0, apperrors.Authentication("Missing or invalid token")
	}
	return claims.UserID, nil
}

// GrantFrom returns the access grant attached by RequireWedding.
func GrantFrom(c echo.Context) (*Grant, bool) {
	grant, ok := c.Get(grantContextKey).(*Grant)
	return grant, ok
}

// Middleware wires the resolver into echo routes.
type Middleware struct {
	resolver *Resolver
	users    repository.UserRepository
}

// NewMiddleware builds the access middleware.
func NewMiddleware(resolver *Resolver, users repository.UserRepository) *Middleware {
	return &Middleware{resolver: resolver, users: users}
}

// RequireWedding resolves the target wedding from the route parameters
// (slug, weddingId or taskId), attaches the caller's grant to the context,
// and rejects guests on mutating methods.
func (m *Middleware) RequireWedding(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, err := CallerID(c)
		if err != nil {
			return err
		}

		target, err := targetFromRoute(c)
		if err != nil {
			return err
		}

		grant, err := m.resolver.Resolve(c.Request().Context(), callerID, target)
		if err != nil {
			return err
		}

		method := c.Request().Method
		if (method == http.MethodPost || method == http.MethodDelete) && !grant.Level.CanMutate() {
			return apperrors.Forbidden("Guests cannot modify wedding data")
		}

		c.Set(grantContextKey, grant)
		return next(c)
	}
}

// AdminOnly restricts a route to users carrying the global admin role.
func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, err := CallerID(c)
		if err != nil {
			return err
		}

		caller, err := m.users.FindByID(c.Request().Context(), callerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("User not found")
			}
			return err
		}
		if caller.Role != model.RoleAdmin {
			return apperrors.Forbidden("Admin access required")
		}
		return next(c)
	}
}

func targetFromRoute(c echo.Context) (Target, error) {
	var target Target
	if slug := c.Param("slug"); slug != "" {
		target.Slug = slug
		return target, nil
	}
	if raw := c.Param("taskId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return target, apperrors.Validation("Invalid task id")
		}
		target.TaskID = uint(id)
		return target, nil
	}
	if raw := c.Param("weddingId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return target, apperrors.Validation("Invalid wedding id")
		}
		target.WeddingID = uint(id)
		return target, nil
	}
	return target, apperrors.NotFound("Wedding not found")
}
