package repository

import (
	"context"

	"gorm.io/gorm"

	"wedplan/internal/model"
)

// UserRepository defines user persistence operations, including the
// per-wedding membership and guest-detail rows that live on the user side.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)

	AddMembership(ctx context.Context, m *model.WeddingMembership) error
	FindMembership(ctx context.Context, userID, weddingID uint) (*model.WeddingMembership, error)
	SaveMembership(ctx context.Context, m *model.WeddingMembership) error
	DeleteMembership(ctx context.Context, userID, weddingID uint) error

	SaveGuestDetail(ctx context.Context, d *model.GuestDetail) error
	FindGuestDetail(ctx context.Context, userID, weddingID uint) (*model.GuestDetail, error)
	DeleteGuestDetail(ctx context.Context, userID, weddingID uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Memberships").
		Preload("GuestDetails").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Memberships").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) AddMembership(ctx context.Context, m *model.WeddingMembership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *userRepository) FindMembership(ctx context.Context, userID, weddingID uint) (*model.WeddingMembership, error) {
	var m model.WeddingMembership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND wedding_id = ?", userID, weddingID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *userRepository) SaveMembership(ctx context.Context, m *model.WeddingMembership) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *userRepository) DeleteMembership(ctx context.Context, userID, weddingID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND wedding_id = ?", userID, weddingID).
		Delete(&model.WeddingMembership{}).Error
}

func (r *userRepository) SaveGuestDetail(ctx context.Context, d *model.GuestDetail) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *userRepository) FindGuestDetail(ctx context.Context, userID, weddingID uint) (*model.GuestDetail, error) {
	var d model.GuestDetail
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND wedding_id = ?", userID, weddingID).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *userRepository) DeleteGuestDetail(ctx context.Context, userID, weddingID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND wedding_id = ?", userID, weddingID).
		Delete(&model.GuestDetail{}).Error
}
