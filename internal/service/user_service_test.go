package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"wedplan/internal/cache"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository/mocks"
)

// The cache client fails safe on a nil receiver, so admin operations are
// tested against the repository alone.
func newUserFixture() (*mocks.UserRepository, UserService) {
	users := new(mocks.UserRepository)
	return users, NewUserService(users, (*cache.Client)(nil))
}

func TestUserService_Get(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		users, svc := newUserFixture()

		users.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Name: "Nina"}, nil)

		user, err := svc.Get(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, "Nina", user.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		users, svc := newUserFixture()

		users.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Get(context.Background(), 5)

		assert.Error(t, err)
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})
}

func TestUserService_Deactivate(t *testing.T) {
	t.Run("flips is_active and keeps the record", func(t *testing.T) {
		users, svc := newUserFixture()

		users.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, IsActive: true}, nil)
		users.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.ID == 5 && !u.IsActive
		})).Return(nil)

		assert.NoError(t, svc.Deactivate(context.Background(), 5))
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		users.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		users, svc := newUserFixture()

		users.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		err := svc.Deactivate(context.Background(), 5)

		assert.Error(t, err)
		assert.Equal(t, 404, apperrors.StatusOf(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	users, svc := newUserFixture()

	users.On("Delete", mock.Anything, uint(5)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 5))
	users.AssertExpectations(t)
}
