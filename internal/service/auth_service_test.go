package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wedplan/internal/auth"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository/mocks"
)

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockGoogleVerifier is a mock implementation of auth.GoogleVerifier.
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GoogleIdentity), args.Error(1)
}

func newAuthFixture() (*mocks.UserRepository, *MockTokenStore, *MockGoogleVerifier, AuthService) {
	users := new(mocks.UserRepository)
	tokenStore := new(MockTokenStore)
	google := new(MockGoogleVerifier)
	jwtService := auth.NewJWTService("test-secret")
	return users, tokenStore, google, NewAuthService(users, jwtService, tokenStore, google)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMock      func(*mocks.UserRepository, *MockTokenStore)
		expectedStatus int
	}{
		{
			name:  "successful registration",
			email: "test@example.com",
			setupMock: func(users *mocks.UserRepository, tokenStore *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "test@example.com", mock.Anything).Return(nil)
			},
		},
		{
			name:  "email already registered",
			email: "existing@example.com",
			setupMock: func(users *mocks.UserRepository, tokenStore *MockTokenStore) {
				email := "existing@example.com"
				users.On("FindByEmail", mock.Anything, email).Return(&model.User{ID: 1, Email: &email}, nil)
			},
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, tokenStore, _, svc := newAuthFixture()
			tt.setupMock(users, tokenStore)

			accessToken, refreshToken, user, err := svc.Register(context.Background(), tt.email, "password123", "Test User")

			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.StatusOf(err))
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, model.RoleCouple, user.Role)
				assert.True(t, user.IsRegistered)
				assert.NotNil(t, user.PasswordHash)
			}

			users.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	hash := string(hashed)

	tests := []struct {
		name           string
		password       string
		setupMock      func(*mocks.UserRepository, *MockTokenStore)
		expectedStatus int
	}{
		{
			name:     "successful login",
			password: "password123",
			setupMock: func(users *mocks.UserRepository, tokenStore *MockTokenStore) {
				email := "test@example.com"
				users.On("FindByEmail", mock.Anything, email).Return(&model.User{
					ID:           7,
					Email:        &email,
					PasswordHash: &hash,
					IsActive:     true,
					IsRegistered: true,
				}, nil)
				tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(7), email, mock.Anything).Return(nil)
			},
		},
		{
			name:     "user not found",
			password: "password123",
			setupMock: func(users *mocks.UserRepository, tokenStore *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: 401,
		},
		{
			name:     "wrong password",
			password: "not-the-password",
			setupMock: func(users *mocks.UserRepository, tokenStore *MockTokenStore) {
				email := "test@example.com"
				users.On("FindByEmail", mock.Anything, email).Return(&model.User{
					ID:           7,
					Email:        &email,
					PasswordHash: &hash,
					IsActive:     true,
					IsRegistered: true,
				}, nil)
			},
			expectedStatus: 401,
		},
		{
			name:     "disabled account",
			password: "password123",
			setupMock: func(users *mocks.UserRepository, tokenStore *MockTokenStore) {
				email := "test@example.com"
				users.On("FindByEmail", mock.Anything, email).Return(&model.User{
					ID:           7,
					Email:        &email,
					PasswordHash: &hash,
					IsActive:     false,
				}, nil)
			},
			expectedStatus: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, tokenStore, _, svc := newAuthFixture()
			tt.setupMock(users, tokenStore)

			accessToken, refreshToken, user, err := svc.Login(context.Background(), "test@example.com", tt.password)

			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.StatusOf(err))
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
			}

			users.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

// An invited user logging in for the first time gets flipped to registered.
func TestAuthService_LoginMarksInvitedUserRegistered(t *testing.T) {
	users, tokenStore, _, svc := newAuthFixture()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	hash := string(hashed)
	email := "invited@example.com"
	invited := &model.User{
		ID:           3,
		Email:        &email,
		PasswordHash: &hash,
		IsActive:     true,
		IsRegistered: false,
	}

	users.On("FindByEmail", mock.Anything, email).Return(invited, nil)
	users.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(3), email, mock.Anything).Return(nil)

	_, _, user, err := svc.Login(context.Background(), email, "password123")

	assert.NoError(t, err)
	assert.True(t, user.IsRegistered)
	users.AssertExpectations(t)
}

func TestAuthService_GoogleLogin(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		users, _, google, svc := newAuthFixture()
		google.On("Verify", mock.Anything, "bad-token").Return(nil, auth.ErrInvalidGoogleToken)

		_, _, user, err := svc.GoogleLogin(context.Background(), "bad-token")

		assert.Error(t, err)
		assert.Equal(t, 401, apperrors.StatusOf(err))
		assert.Nil(t, user)
		users.AssertNotCalled(t, "FindByGoogleID", mock.Anything, mock.Anything)
	})

	t.Run("existing google user", func(t *testing.T) {
		users, tokenStore, google, svc := newAuthFixture()
		email := "g@example.com"
		sub := "google-sub-1"
		google.On("Verify", mock.Anything, "good-token").Return(&auth.GoogleIdentity{Subject: sub, Email: email, Name: "G User"}, nil)
		users.On("FindByGoogleID", mock.Anything, sub).Return(&model.User{
			ID:           9,
			Email:        &email,
			GoogleID:     &sub,
			IsActive:     true,
			IsRegistered: true,
		}, nil)
		tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(9), email, mock.Anything).Return(nil)

		accessToken, refreshToken, user, err := svc.GoogleLogin(context.Background(), "good-token")

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, uint(9), user.ID)
	})

	t.Run("links existing account by email", func(t *testing.T) {
		users, tokenStore, google, svc := newAuthFixture()
		email := "linked@example.com"
		sub := "google-sub-2"
		google.On("Verify", mock.Anything, "good-token").Return(&auth.GoogleIdentity{Subject: sub, Email: email, Name: "L User"}, nil)
		users.On("FindByGoogleID", mock.Anything, sub).Return(nil, gorm.ErrRecordNotFound)
		users.On("FindByEmail", mock.Anything, email).Return(&model.User{
			ID:           4,
			Email:        &email,
			IsActive:     true,
			IsRegistered: true,
		}, nil)
		users.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(4), email, mock.Anything).Return(nil)

		_, _, user, err := svc.GoogleLogin(context.Background(), "good-token")

		assert.NoError(t, err)
		assert.NotNil(t, user.GoogleID)
		assert.Equal(t, sub, *user.GoogleID)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates new user when no match", func(t *testing.T) {
		users, tokenStore, google, svc := newAuthFixture()
		email := "fresh@example.com"
		sub := "google-sub-3"
		google.On("Verify", mock.Anything, "good-token").Return(&auth.GoogleIdentity{Subject: sub, Email: email, Name: "F User"}, nil)
		users.On("FindByGoogleID", mock.Anything, sub).Return(nil, gorm.ErrRecordNotFound)
		users.On("FindByEmail", mock.Anything, email).Return(nil, gorm.ErrRecordNotFound)
		users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		tokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, email, mock.Anything).Return(nil)

		_, _, user, err := svc.GoogleLogin(context.Background(), "good-token")

		assert.NoError(t, err)
		assert.Equal(t, model.RoleCouple, user.Role)
		assert.Nil(t, user.PasswordHash)
		users.AssertExpectations(t)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	users := new(mocks.UserRepository)
	tokenStore := new(MockTokenStore)
	google := new(MockGoogleVerifier)
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(users, jwtService, tokenStore, google)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "test@example.com")
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(7), "test@example.com", nil).Once()

		accessToken, err := svc.Refresh(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("token not in store", func(t *testing.T) {
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError).Once()

		_, err := svc.Refresh(context.Background(), refreshToken)

		assert.Error(t, err)
		assert.Equal(t, 401, apperrors.StatusOf(err))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), "not-a-jwt")

		assert.Error(t, err)
		assert.Equal(t, 401, apperrors.StatusOf(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	users := new(mocks.UserRepository)
	tokenStore := new(MockTokenStore)
	google := new(MockGoogleVerifier)
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(users, jwtService, tokenStore, google)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "test@example.com")
	assert.NoError(t, err)

	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}
