package service

import (
	"context"
	"fmt"

	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/onboarding"
)

// OnboardingService manages the guided setup draft and its completion.
type OnboardingService interface {
	GetProgress(ctx context.Context, userID uint) (*model.OnboardingProgress, error)
	PutProgress(ctx context.Context, userID uint, progress *model.OnboardingProgress) (*model.OnboardingProgress, error)
	Complete(ctx context.Context, userID uint) (*model.Wedding, error)
}

type onboardingService struct {
	store    *onboarding.Store
	weddings WeddingService
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(store *onboarding.Store, weddings WeddingService) OnboardingService {
	return &onboardingService{store: store, weddings: weddings}
}

// GetProgress returns the caller's draft, or a fresh empty one if none exists
// (first visit, or the previous draft expired).
func (s *onboardingService) GetProgress(ctx context.Context, userID uint) (*model.OnboardingProgress, error) {
	progress, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load onboarding progress: %w", err)
	}
	if progress == nil {
		return &model.OnboardingProgress{}, nil
	}
	return progress, nil
}

// PutProgress upserts the draft; every write pushes the expiry out again.
func (s *onboardingService) PutProgress(ctx context.Context, userID uint, progress *model.OnboardingProgress) (*model.OnboardingProgress, error) {
	if progress.Step < 0 {
		return nil, apperrors.Validation("Step cannot be negative")
	}
	if err := s.store.Put(ctx, userID, progress); err != nil {
		return nil, fmt.Errorf("save onboarding progress: %w", err)
	}
	return progress, nil
}

// Complete turns the draft into a real wedding owned by the caller (and the
// partner, when one was entered), then drops the draft.
func (s *onboardingService) Complete(ctx context.Context, userID uint) (*model.Wedding, error) {
	progress, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load onboarding progress: %w", err)
	}
	if progress == nil {
		return nil, apperrors.NotFound("No onboarding in progress")
	}
	if progress.Wedding.Title == "" {
		return nil, apperrors.Validation("Onboarding is missing wedding details")
	}

	wedding, err := s.weddings.Create(ctx, userID, CreateWeddingInput{
		Title:        progress.Wedding.Title,
		Date:         progress.Wedding.Date,
		Location:     progress.Wedding.Location,
		BudgetTotal:  progress.Wedding.BudgetTotal,
		PartnerEmail: progress.Couple.PartnerTwoEmail,
		PartnerName:  progress.Couple.PartnerTwoName,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("drop onboarding progress: %w", err)
	}
	return wedding, nil
}
