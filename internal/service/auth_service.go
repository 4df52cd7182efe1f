package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wedplan/internal/auth"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup, login and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (accessToken, refreshToken string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	GoogleLogin(ctx context.Context, idToken string) (accessToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	google     auth.GoogleVerifier
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, google auth.GoogleVerifier) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		google:     google,
	}
}

// Register creates a new user with a hashed password and signs them in.
func (s *authService) Register(ctx context.Context, email, password, name string) (string, string, *model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", "", nil, apperrors.Validation("Email already registered")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", "", nil, fmt.Errorf("hash password: %w", err)
	}

	hash := string(hashed)
	user := &model.User{
		Name:         name,
		Email:        &email,
		PasswordHash: &hash,
		Role:         model.RoleCouple,
		IsActive:     true,
		IsRegistered: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", "", nil, fmt.Errorf("create user: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

// Login verifies credentials and issues tokens. The first successful login of
// an invited user marks them registered.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, apperrors.Authentication("Invalid email or password")
	}
	if !user.IsActive {
		return "", "", nil, apperrors.Forbidden("Account is disabled")
	}
	if user.PasswordHash == nil {
		return "", "", nil, apperrors.Authentication("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, apperrors.Authentication("Invalid email or password")
	}

	if !user.IsRegistered {
		user.IsRegistered = true
		if err := s.users.Save(ctx, user); err != nil {
			return "", "", nil, fmt.Errorf("mark registered: %w", err)
		}
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

// GoogleLogin verifies a Google ID token and signs the matching user in,
// linking or creating the account as needed.
func (s *authService) GoogleLogin(ctx context.Context, idToken string) (string, string, *model.User, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return "", "", nil, apperrors.Authentication("Invalid Google token")
	}

	user, err := s.users.FindByGoogleID(ctx, identity.Subject)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, fmt.Errorf("find user by google id: %w", err)
		}
		user, err = s.linkOrCreateGoogleUser(ctx, identity)
		if err != nil {
			return "", "", nil, err
		}
	}

	if !user.IsActive {
		return "", "", nil, apperrors.Forbidden("Account is disabled")
	}
	if !user.IsRegistered {
		user.IsRegistered = true
		if err := s.users.Save(ctx, user); err != nil {
			return "", "", nil, fmt.Errorf("mark registered: %w", err)
		}
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", nil, err
	}
	return accessToken, refreshToken, user, nil
}

// linkOrCreateGoogleUser attaches the Google subject to an existing user with
// the same email, or creates a fresh social-login user with no password.
func (s *authService) linkOrCreateGoogleUser(ctx context.Context, identity *auth.GoogleIdentity) (*model.User, error) {
	if identity.Email != "" {
		existing, err := s.users.FindByEmail(ctx, identity.Email)
		if err == nil {
			existing.GoogleID = &identity.Subject
			if err := s.users.Save(ctx, existing); err != nil {
				return nil, fmt.Errorf("link google account: %w", err)
			}
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user by email: %w", err)
		}
	}

	user := &model.User{
		Name:         identity.Name,
		GoogleID:     &identity.Subject,
		Role:         model.RoleCouple,
		IsActive:     true,
		IsRegistered: true,
	}
	if identity.Email != "" {
		email := identity.Email
		user.Email = &email
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create google user: %w", err)
	}
	return user, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.Authentication("Invalid or expired refresh token")
	}
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.Authentication("Invalid or expired refresh token")
	}

	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.Authentication("Invalid or expired refresh token")
	}
	if storedUserID != claims.UserID || storedEmail != claims.Email {
		return "", apperrors.Authentication("Invalid or expired refresh token")
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.Authentication("Invalid or expired refresh token")
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (string, string, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, email)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}
	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, email)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, email, auth.RefreshTokenExpiry); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}
