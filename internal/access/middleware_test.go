package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wedplan/internal/auth"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository/mocks"
)

func newContext(method, path string, paramName, paramValue string, userID uint) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramName)
	c.SetParamValues(paramValue)
	c.Set("user", &jwt.Token{Claims: &auth.Claims{UserID: userID}})
	return c
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireWedding_GuestPostForbidden(t *testing.T) {
	users := new(mocks.UserRepository)
	weddings := new(mocks.WeddingRepository)
	tasks := new(mocks.TaskRepository)
	mw := NewMiddleware(NewResolver(users, weddings, tasks), users)

	users.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4}, nil)
	weddings.On("FindByID", mock.Anything, uint(10)).Return(&model.Wedding{ID: 10}, nil)
	users.On("FindMembership", mock.Anything, uint(4), uint(10)).Return(&model.WeddingMembership{
		UserID:      4,
		WeddingID:   10,
		AccessLevel: string(LevelGuest),
	}, nil)

	c := newContext(http.MethodPost, "/api/weddings/10/guests", "weddingId", "10", 4)
	err := mw.RequireWedding(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.StatusOf(err))
}

func TestRequireWedding_GuestDeleteForbidden(t *testing.T) {
	users := new(mocks.UserRepository)
	weddings := new(mocks.WeddingRepository)
	tasks := new(mocks.TaskRepository)
	mw := NewMiddleware(NewResolver(users, weddings, tasks), users)

	users.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4}, nil)
	tasks.On("FindByID", mock.Anything, uint(7)).Return(&model.Task{ID: 7, WeddingID: 10}, nil)
	weddings.On("FindByID", mock.Anything, uint(10)).Return(&model.Wedding{ID: 10}, nil)
	users.On("FindMembership", mock.Anything, uint(4), uint(10)).Return(&model.WeddingMembership{
		UserID:      4,
		WeddingID:   10,
		AccessLevel: string(LevelGuest),
	}, nil)

	c := newContext(http.MethodDelete, "/api/tasks/7", "taskId", "7", 4)
	err := mw.RequireWedding(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.StatusOf(err))
}

func TestRequireWedding_GuestReadAllowedAndGrantAttached(t *testing.T) {
	users := new(mocks.UserRepository)
	weddings := new(mocks.WeddingRepository)
	tasks := new(mocks.TaskRepository)
	mw := NewMiddleware(NewResolver(users, weddings, tasks), users)

	users.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4}, nil)
	weddings.On("FindByID", mock.Anything, uint(10)).Return(&model.Wedding{ID: 10}, nil)
	users.On("FindMembership", mock.Anything, uint(4), uint(10)).Return(&model.WeddingMembership{
		UserID:      4,
		WeddingID:   10,
		AccessLevel: string(LevelGuest),
	}, nil)

	c := newContext(http.MethodGet, "/api/weddings/10", "weddingId", "10", 4)
	err := mw.RequireWedding(func(c echo.Context) error {
		grant, ok := GrantFrom(c)
		require.True(t, ok)
		assert.Equal(t, LevelGuest, grant.Level)
		assert.Equal(t, uint(10), grant.Wedding.ID)
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
}

func TestRequireWedding_RSVPPatchAllowedForGuest(t *testing.T) {
	users := new(mocks.UserRepository)
	weddings := new(mocks.WeddingRepository)
	tasks := new(mocks.TaskRepository)
	mw := NewMiddleware(NewResolver(users, weddings, tasks), users)

	users.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4}, nil)
	weddings.On("FindByID", mock.Anything, uint(10)).Return(&model.Wedding{ID: 10}, nil)
	users.On("FindMembership", mock.Anything, uint(4), uint(10)).Return(&model.WeddingMembership{
		UserID:      4,
		WeddingID:   10,
		AccessLevel: string(LevelGuest),
	}, nil)

	c := newContext(http.MethodPatch, "/api/weddings/10/rsvp", "weddingId", "10", 4)
	err := mw.RequireWedding(okHandler)(c)
	require.NoError(t, err)
}

func TestRequireWedding_MissingTokenUnauthorized(t *testing.T) {
	users := new(mocks.UserRepository)
	weddings := new(mocks.WeddingRepository)
	tasks := new(mocks.TaskRepository)
	mw := NewMiddleware(NewResolver(users, weddings, tasks), users)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/weddings/10", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("weddingId")
	c.SetParamValues("10")

	err := mw.RequireWedding(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestAdminOnly(t *testing.T) {
	users := new(mocks.UserRepository)
	weddings := new(mocks.WeddingRepository)
	tasks := new(mocks.TaskRepository)
	mw := NewMiddleware(NewResolver(users, weddings, tasks), users)

	users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)
	users.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleCouple}, nil)

	c := newContext(http.MethodGet, "/api/users", "", "", 1)
	assert.NoError(t, mw.AdminOnly(okHandler)(c))

	c = newContext(http.MethodGet, "/api/users", "", "", 2)
	err := mw.AdminOnly(okHandler)(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.StatusOf(err))
}
