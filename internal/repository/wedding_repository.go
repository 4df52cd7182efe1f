package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wedplan/internal/model"
)

// WeddingRepository defines wedding and budget-category persistence operations.
type WeddingRepository interface {
	Create(ctx context.Context, wedding *model.Wedding) error
	Save(ctx context.Context, wedding *model.Wedding) error
	FindByID(ctx context.Context, id uint) (*model.Wedding, error)
	FindBySlug(ctx context.Context, slug string) (*model.Wedding, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListAll(ctx context.Context) ([]model.Wedding, error)
	ListForUser(ctx context.Context, userID uint) ([]model.Wedding, error)
	AddCoupleMember(ctx context.Context, wedding *model.Wedding, user *model.User) error
	UpdateBudget(ctx context.Context, id uint, total, spent decimal.Decimal) error

	FindCategory(ctx context.Context, weddingID, categoryID uint) (*model.BudgetCategory, error)
	SaveCategory(ctx context.Context, category *model.BudgetCategory) error
}

type weddingRepository struct {
	db *gorm.DB
}

// NewWeddingRepository builds a GORM-backed repository.
func NewWeddingRepository(db *gorm.DB) WeddingRepository {
	return &weddingRepository{db: db}
}

func (r *weddingRepository) Create(ctx context.Context, wedding *model.Wedding) error {
	return r.db.WithContext(ctx).Create(wedding).Error
}

func (r *weddingRepository) Save(ctx context.Context, wedding *model.Wedding) error {
	return r.db.WithContext(ctx).Save(wedding).Error
}

func (r *weddingRepository) FindByID(ctx context.Context, id uint) (*model.Wedding, error) {
	var wedding model.Wedding
	if err := r.db.WithContext(ctx).
		Preload("Couple").
		Preload("BudgetCategories").
		Preload("Tasks").
		First(&wedding, id).Error; err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *weddingRepository) FindBySlug(ctx context.Context, slug string) (*model.Wedding, error) {
	var wedding model.Wedding
	if err := r.db.WithContext(ctx).
		Preload("Couple").
		Preload("BudgetCategories").
		Preload("Tasks").
		Where("slug = ?", slug).
		First(&wedding).Error; err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *weddingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Wedding{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *weddingRepository) ListAll(ctx context.Context) ([]model.Wedding, error) {
	var weddings []model.Wedding
	if err := r.db.WithContext(ctx).Preload("Couple").Find(&weddings).Error; err != nil {
		return nil, err
	}
	return weddings, nil
}

// ListForUser returns weddings where the user is a couple member or holds a
// membership row.
func (r *weddingRepository) ListForUser(ctx context.Context, userID uint) ([]model.Wedding, error) {
	var weddings []model.Wedding
	if err := r.db.WithContext(ctx).
		Preload("Couple").
		Where("id IN (?)",
			r.db.Table("wedding_couples").Select("wedding_id").Where("user_id = ?", userID),
		).
		Or("id IN (?)",
			r.db.Table("wedding_memberships").Select("wedding_id").Where("user_id = ?", userID),
		).
		Find(&weddings).Error; err != nil {
		return nil, err
	}
	return weddings, nil
}

func (r *weddingRepository) AddCoupleMember(ctx context.Context, wedding *model.Wedding, user *model.User) error {
	return r.db.WithContext(ctx).Model(wedding).Association("Couple").Append(user)
}

func (r *weddingRepository) UpdateBudget(ctx context.Context, id uint, total, spent decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Wedding{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"budget_total": total, "budget_spent": spent}).Error
}

func (r *weddingRepository) FindCategory(ctx context.Context, weddingID, categoryID uint) (*model.BudgetCategory, error) {
	var category model.BudgetCategory
	if err := r.db.WithContext(ctx).
		Where("id = ? AND wedding_id = ?", categoryID, weddingID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *weddingRepository) SaveCategory(ctx context.Context, category *model.BudgetCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}
