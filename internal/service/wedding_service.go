package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wedplan/internal/access"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository"
	"wedplan/internal/slug"
)

// CreateWeddingInput carries the fields needed to open a planning space.
type CreateWeddingInput struct {
	Title        string
	Date         *time.Time
	Location     string
	BudgetTotal  decimal.Decimal
	PartnerEmail string
	PartnerName  string
}

// GuestInput describes a guest being added or updated on a wedding. PlusOne is
// a pointer so a partial update that omits it leaves the stored flag alone.
type GuestInput struct {
	Email       string
	Name        string
	AccessLevel string
	Dietary     string
	PartyRole   string
	Side        string
	PlusOne     *bool
}

// RSVPInput is a guest's reply. Only non-nil optional fields are applied.
type RSVPInput struct {
	Status  string
	Dietary *string
	PlusOne *bool
}

// WeddingService orchestrates wedding, guest and budget operations. Callers
// pass the access grant resolved by the middleware; the service trusts it.
type WeddingService interface {
	List(ctx context.Context, callerID uint) ([]model.Wedding, error)
	Get(ctx context.Context, grant *access.Grant) (*model.Wedding, error)
	Create(ctx context.Context, creatorID uint, input CreateWeddingInput) (*model.Wedding, error)
	AddGuest(ctx context.Context, grant *access.Grant, input GuestInput) (*model.User, error)
	UpdateGuest(ctx context.Context, grant *access.Grant, guestID uint, input GuestInput) error
	DeleteGuest(ctx context.Context, grant *access.Grant, guestID uint) error
	UpdateRSVP(ctx context.Context, grant *access.Grant, callerID uint, input RSVPInput) (*model.GuestDetail, error)
	UpdateBudget(ctx context.Context, grant *access.Grant, total decimal.Decimal) error
}

type weddingService struct {
	users    repository.UserRepository
	weddings repository.WeddingRepository
}

// NewWeddingService creates a new wedding service.
func NewWeddingService(users repository.UserRepository, weddings repository.WeddingRepository) WeddingService {
	return &weddingService{users: users, weddings: weddings}
}

// List returns every wedding for admins, otherwise the caller's weddings.
func (s *weddingService) List(ctx context.Context, callerID uint) ([]model.Wedding, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	if caller.Role == model.RoleAdmin {
		return s.weddings.ListAll(ctx)
	}
	return s.weddings.ListForUser(ctx, callerID)
}

// Get returns the resolved wedding; guests see it with budget data redacted.
func (s *weddingService) Get(ctx context.Context, grant *access.Grant) (*model.Wedding, error) {
	if grant.Level == access.LevelGuest {
		return redactBudget(grant.Wedding), nil
	}
	return grant.Wedding, nil
}

// redactBudget strips cost information from a wedding view. The shape stays
// intact so guests still see categories and task completion.
func redactBudget(wedding *model.Wedding) *model.Wedding {
	redacted := *wedding
	redacted.BudgetTotal = decimal.Zero
	redacted.BudgetSpent = decimal.Zero

	redacted.BudgetCategories = make([]model.BudgetCategory, len(wedding.BudgetCategories))
	for i, category := range wedding.BudgetCategories {
		category.EstimatedCost = decimal.Zero
		category.Spent = decimal.Zero
		category.Progress = 0
		redacted.BudgetCategories[i] = category
	}

	redacted.Tasks = make([]model.Task, len(wedding.Tasks))
	for i, task := range wedding.Tasks {
		task.Budget = decimal.Zero
		task.ActualCost = decimal.Zero
		redacted.Tasks[i] = task
	}
	return &redacted
}

// Create persists the wedding with its fixed category set, then pushes couple
// membership onto the creator and the optional partner. The membership pushes
// are sequential writes after the insert; a crash in between leaves an
// orphaned wedding (known gap, matches the original behavior).
func (s *weddingService) Create(ctx context.Context, creatorID uint, input CreateWeddingInput) (*model.Wedding, error) {
	if input.Title == "" {
		return nil, apperrors.Validation("Title is required")
	}

	creator, err := s.users.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	weddingSlug, err := slug.Unique(ctx, input.Title, s.weddings.SlugExists)
	if err != nil {
		return nil, fmt.Errorf("derive slug: %w", err)
	}

	categories := make([]model.BudgetCategory, len(model.BudgetCategoryNames))
	for i, name := range model.BudgetCategoryNames {
		categories[i] = model.BudgetCategory{Name: name}
	}

	wedding := &model.Wedding{
		Title:            input.Title,
		Slug:             weddingSlug,
		Date:             input.Date,
		Location:         input.Location,
		BudgetTotal:      input.BudgetTotal,
		BudgetCategories: categories,
	}
	if err := s.weddings.Create(ctx, wedding); err != nil {
		return nil, fmt.Errorf("create wedding: %w", err)
	}

	if err := s.weddings.AddCoupleMember(ctx, wedding, creator); err != nil {
		return nil, fmt.Errorf("add creator to couple: %w", err)
	}

	if input.PartnerEmail != "" {
		partner, err := s.findOrCreateUser(ctx, input.PartnerEmail, input.PartnerName, model.RoleCouple)
		if err != nil {
			return nil, err
		}
		if err := s.weddings.AddCoupleMember(ctx, wedding, partner); err != nil {
			return nil, fmt.Errorf("add partner to couple: %w", err)
		}
	}

	return s.weddings.FindByID(ctx, wedding.ID)
}

// AddGuest invites a user to the wedding at the requested access level.
func (s *weddingService) AddGuest(ctx context.Context, grant *access.Grant, input GuestInput) (*model.User, error) {
	if input.Email == "" {
		return nil, apperrors.Validation("Guest email is required")
	}

	level := access.LevelGuest
	if input.AccessLevel != "" {
		level = access.Level(input.AccessLevel)
		if level != access.LevelGuest && level != access.LevelWeddingAdmin && level != access.LevelCouple {
			return nil, apperrors.Validation("Invalid access level")
		}
	}
	if err := access.ValidateRoleChange(level, grant.Level); err != nil {
		return nil, err
	}

	guest, err := s.findOrCreateUser(ctx, input.Email, input.Name, model.RoleGuest)
	if err != nil {
		return nil, err
	}

	if level == access.LevelCouple {
		if err := s.weddings.AddCoupleMember(ctx, grant.Wedding, guest); err != nil {
			return nil, fmt.Errorf("add couple member: %w", err)
		}
	} else {
		membership, err := s.users.FindMembership(ctx, guest.ID, grant.Wedding.ID)
		switch {
		case err == nil:
			membership.AccessLevel = string(level)
			if err := s.users.SaveMembership(ctx, membership); err != nil {
				return nil, fmt.Errorf("update membership: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.users.AddMembership(ctx, &model.WeddingMembership{
				UserID:      guest.ID,
				WeddingID:   grant.Wedding.ID,
				AccessLevel: string(level),
			}); err != nil {
				return nil, fmt.Errorf("add membership: %w", err)
			}
		default:
			return nil, err
		}
	}

	detail := &model.GuestDetail{
		UserID:     guest.ID,
		WeddingID:  grant.Wedding.ID,
		RSVPStatus: model.RSVPPending,
		Dietary:    input.Dietary,
		PartyRole:  input.PartyRole,
		Side:       input.Side,
	}
	if existing, err := s.users.FindGuestDetail(ctx, guest.ID, grant.Wedding.ID); err == nil {
		detail.ID = existing.ID
		detail.RSVPStatus = existing.RSVPStatus
		detail.PlusOne = existing.PlusOne
	}
	if input.PlusOne != nil {
		detail.PlusOne = *input.PlusOne
	}
	if err := s.users.SaveGuestDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("save guest detail: %w", err)
	}

	return guest, nil
}

// UpdateGuest changes a guest's access level and/or guest attributes.
func (s *weddingService) UpdateGuest(ctx context.Context, grant *access.Grant, guestID uint, input GuestInput) error {
	if input.AccessLevel != "" {
		level := access.Level(input.AccessLevel)
		if level != access.LevelGuest && level != access.LevelWeddingAdmin && level != access.LevelCouple {
			return apperrors.Validation("Invalid access level")
		}
		if err := access.ValidateRoleChange(level, grant.Level); err != nil {
			return err
		}
		if level == access.LevelCouple {
			guest, err := s.users.FindByID(ctx, guestID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("Guest not found")
				}
				return err
			}
			if err := s.weddings.AddCoupleMember(ctx, grant.Wedding, guest); err != nil {
				return fmt.Errorf("promote to couple: %w", err)
			}
			if err := s.users.DeleteMembership(ctx, guestID, grant.Wedding.ID); err != nil {
				return fmt.Errorf("drop membership: %w", err)
			}
		} else {
			membership, err := s.users.FindMembership(ctx, guestID, grant.Wedding.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("Guest is not a member of this wedding")
				}
				return err
			}
			membership.AccessLevel = string(level)
			if err := s.users.SaveMembership(ctx, membership); err != nil {
				return fmt.Errorf("update membership: %w", err)
			}
		}
	}

	detail, err := s.users.FindGuestDetail(ctx, guestID, grant.Wedding.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // access change only, no guest detail to touch
		}
		return err
	}
	if input.Dietary != "" {
		detail.Dietary = input.Dietary
	}
	if input.PartyRole != "" {
		detail.PartyRole = input.PartyRole
	}
	if input.Side != "" {
		detail.Side = input.Side
	}
	if input.PlusOne != nil {
		detail.PlusOne = *input.PlusOne
	}
	return s.users.SaveGuestDetail(ctx, detail)
}

// DeleteGuest removes a guest's membership and guest detail for the wedding.
// The user record itself stays.
func (s *weddingService) DeleteGuest(ctx context.Context, grant *access.Grant, guestID uint) error {
	if err := s.users.DeleteMembership(ctx, guestID, grant.Wedding.ID); err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if err := s.users.DeleteGuestDetail(ctx, guestID, grant.Wedding.ID); err != nil {
		return fmt.Errorf("delete guest detail: %w", err)
	}
	return nil
}

// UpdateRSVP records the caller's reply. An invalid status is rejected before
// anything is written.
func (s *weddingService) UpdateRSVP(ctx context.Context, grant *access.Grant, callerID uint, input RSVPInput) (*model.GuestDetail, error) {
	if !model.ValidRSVPStatus(input.Status) {
		return nil, apperrors.Validation("RSVP status must be pending, confirmed or declined")
	}

	detail, err := s.users.FindGuestDetail(ctx, callerID, grant.Wedding.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("No guest record for this wedding")
		}
		return nil, err
	}

	detail.RSVPStatus = input.Status
	if input.Dietary != nil {
		detail.Dietary = *input.Dietary
	}
	if input.PlusOne != nil {
		detail.PlusOne = *input.PlusOne
	}
	if err := s.users.SaveGuestDetail(ctx, detail); err != nil {
		return nil, fmt.Errorf("save rsvp: %w", err)
	}
	return detail, nil
}

// UpdateBudget sets the wedding's total budget. Spent stays as computed from
// tasks.
func (s *weddingService) UpdateBudget(ctx context.Context, grant *access.Grant, total decimal.Decimal) error {
	if total.IsNegative() {
		return apperrors.Validation("Budget total cannot be negative")
	}
	return s.weddings.UpdateBudget(ctx, grant.Wedding.ID, total, grant.Wedding.BudgetSpent)
}

// findOrCreateUser resolves an email to a user, creating an unregistered
// placeholder when no account exists yet.
func (s *weddingService) findOrCreateUser(ctx context.Context, email, name, role string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		Name:         name,
		Email:        &email,
		Role:         role,
		IsActive:     true,
		IsRegistered: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create invited user: %w", err)
	}
	return user, nil
}
