// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"wedplan/internal/model"
	"wedplan/internal/repository"
)

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.WeddingRepository = (*WeddingRepository)(nil)
	_ repository.TaskRepository    = (*TaskRepository)(nil)
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserRepository) AddMembership(ctx context.Context, membership *model.WeddingMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *UserRepository) FindMembership(ctx context.Context, userID, weddingID uint) (*model.WeddingMembership, error) {
	args := m.Called(ctx, userID, weddingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeddingMembership), args.Error(1)
}

func (m *UserRepository) SaveMembership(ctx context.Context, membership *model.WeddingMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *UserRepository) DeleteMembership(ctx context.Context, userID, weddingID uint) error {
	args := m.Called(ctx, userID, weddingID)
	return args.Error(0)
}

func (m *UserRepository) SaveGuestDetail(ctx context.Context, detail *model.GuestDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *UserRepository) FindGuestDetail(ctx context.Context, userID, weddingID uint) (*model.GuestDetail, error) {
	args := m.Called(ctx, userID, weddingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuestDetail), args.Error(1)
}

func (m *UserRepository) DeleteGuestDetail(ctx context.Context, userID, weddingID uint) error {
	args := m.Called(ctx, userID, weddingID)
	return args.Error(0)
}

// WeddingRepository is a mock implementation of repository.WeddingRepository.
type WeddingRepository struct {
	mock.Mock
}

func (m *WeddingRepository) Create(ctx context.Context, wedding *model.Wedding) error {
	args := m.Called(ctx, wedding)
	return args.Error(0)
}

func (m *WeddingRepository) Save(ctx context.Context, wedding *model.Wedding) error {
	args := m.Called(ctx, wedding)
	return args.Error(0)
}

func (m *WeddingRepository) FindByID(ctx context.Context, id uint) (*model.Wedding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wedding), args.Error(1)
}

func (m *WeddingRepository) FindBySlug(ctx context.Context, slug string) (*model.Wedding, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wedding), args.Error(1)
}

func (m *WeddingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *WeddingRepository) ListAll(ctx context.Context) ([]model.Wedding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wedding), args.Error(1)
}

func (m *WeddingRepository) ListForUser(ctx context.Context, userID uint) ([]model.Wedding, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wedding), args.Error(1)
}

func (m *WeddingRepository) AddCoupleMember(ctx context.Context, wedding *model.Wedding, user *model.User) error {
	args := m.Called(ctx, wedding, user)
	return args.Error(0)
}

func (m *WeddingRepository) UpdateBudget(ctx context.Context, id uint, total, spent decimal.Decimal) error {
	args := m.Called(ctx, id, total, spent)
	return args.Error(0)
}

func (m *WeddingRepository) FindCategory(ctx context.Context, weddingID, categoryID uint) (*model.BudgetCategory, error) {
	args := m.Called(ctx, weddingID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BudgetCategory), args.Error(1)
}

func (m *WeddingRepository) SaveCategory(ctx context.Context, category *model.BudgetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// TaskRepository is a mock implementation of repository.TaskRepository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *TaskRepository) ListByWedding(ctx context.Context, weddingID uint) ([]model.Task, error) {
	args := m.Called(ctx, weddingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskRepository) ListByCategory(ctx context.Context, categoryID uint) ([]model.Task, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}
