// Package access implements per-wedding authorization: resolving which wedding
// a request targets and what level the caller holds on it.
package access

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/repository"
)

// Level is a per-(user, wedding) authorization tier.
type Level string

const (
	LevelAdmin        Level = "admin"
	LevelCouple       Level = "couple"
	LevelWeddingAdmin Level = "weddingAdmin"
	LevelGuest        Level = "guest"
)

var levelRank = map[Level]int{
	LevelGuest:        1,
	LevelWeddingAdmin: 2,
	LevelCouple:       3,
	LevelAdmin:        4,
}

// AtLeast reports whether l grants at least the rights of other.
func (l Level) AtLeast(other Level) bool {
	return levelRank[l] >= levelRank[other]
}

// CanMutate reports whether the level may issue mutating requests (POST,
// DELETE) on wedding-scoped routes. Guests are read/RSVP-only.
func (l Level) CanMutate() bool {
	return l != LevelGuest
}

// Target identifies the wedding a request addresses. Exactly one field is
// expected to be set per route.
type Target struct {
	Slug      string
	WeddingID uint
	TaskID    uint
}

// Grant is the resolved access decision threaded through the request context.
type Grant struct {
	Level   Level
	Wedding *model.Wedding
}

// Resolver determines a caller's effective access level on a wedding.
type Resolver struct {
	users    repository.UserRepository
	weddings repository.WeddingRepository
	tasks    repository.TaskRepository
}

// NewResolver builds a resolver over the given repositories.
func NewResolver(users repository.UserRepository, weddings repository.WeddingRepository, tasks repository.TaskRepository) *Resolver {
	return &Resolver{users: users, weddings: weddings, tasks: tasks}
}

// Resolve looks up the target wedding and the caller's relationship to it.
// The wedding is resolved before any role check because the grant carries it
// for downstream use, so even a global admin gets not-found for a wedding that
// does not exist; admins then skip the membership checks entirely. Couple
// members are recognized from the wedding's couple list even without a
// membership row.
func (r *Resolver) Resolve(ctx context.Context, callerID uint, target Target) (*Grant, error) {
	caller, err := r.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}

	wedding, err := r.resolveWedding(ctx, target)
	if err != nil {
		return nil, err
	}

	if caller.Role == model.RoleAdmin {
		return &Grant{Level: LevelAdmin, Wedding: wedding}, nil
	}

	for _, member := range wedding.Couple {
		if member.ID == callerID {
			return &Grant{Level: LevelCouple, Wedding: wedding}, nil
		}
	}

	membership, err := r.users.FindMembership(ctx, callerID, wedding.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Forbidden("No access to this wedding")
		}
		return nil, err
	}

	return &Grant{Level: Level(membership.AccessLevel), Wedding: wedding}, nil
}

func (r *Resolver) resolveWedding(ctx context.Context, target Target) (*model.Wedding, error) {
	switch {
	case target.Slug != "":
		wedding, err := r.weddings.FindBySlug(ctx, target.Slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Wedding not found")
			}
			return nil, err
		}
		return wedding, nil

	case target.TaskID != 0:
		task, err := r.tasks.FindByID(ctx, target.TaskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Task not found")
			}
			return nil, err
		}
		wedding, err := r.weddings.FindByID(ctx, task.WeddingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Wedding not found")
			}
			return nil, err
		}
		return wedding, nil

	case target.WeddingID != 0:
		wedding, err := r.weddings.FindByID(ctx, target.WeddingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Wedding not found")
			}
			return nil, err
		}
		return wedding, nil

	default:
		return nil, apperrors.NotFound("Wedding not found")
	}
}

// ValidateRoleChange guards promotion into the couple tier: only existing
// couple members may mint new couple members. Transitions between guest and
// weddingAdmin pass; the service layer applies its own checks for those.
func ValidateRoleChange(requested, requester Level) error {
	if requested == LevelCouple && requester != LevelCouple {
		return apperrors.Forbidden("Only couple members can assign couple access")
	}
	return nil
}
