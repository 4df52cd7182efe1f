package model

import "time"

// Legacy global roles. Authorization decisions go through the access resolver;
// RoleAdmin doubles as the global admin flag and is the only role still
// consulted for access control.
const (
	RoleAdmin        = "admin"
	RoleCouple       = "couple"
	RoleGuest        = "guest"
	RoleWeddingAdmin = "weddingAdmin"
)

// RSVP statuses a guest can hold for a wedding.
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
)

// ValidRSVPStatus reports whether s is an accepted RSVP status.
func ValidRSVPStatus(s string) bool {
	return s == RSVPPending || s == RSVPConfirmed || s == RSVPDeclined
}

// User is an identity record. Email and password are optional: invited guests
// exist before they register, and social-login users carry no password.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        *string   `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	PasswordHash *string   `json:"-" gorm:"size:255"` // Never expose in JSON
	GoogleID     *string   `json:"-" gorm:"uniqueIndex;size:255"`
	Phone        string    `json:"phone,omitempty" gorm:"size:64"`
	Role         string    `json:"role,omitempty" gorm:"size:50;default:'guest'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsRegistered bool      `json:"is_registered" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Memberships  []WeddingMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
	GuestDetails []GuestDetail       `json:"guest_details,omitempty" gorm:"foreignKey:UserID"`
}

// WeddingMembership ties a user to a wedding with a per-pair access level
// (weddingAdmin or guest). Couple ownership lives on the wedding itself.
type WeddingMembership struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_membership_user_wedding"`
	WeddingID   uint      `json:"wedding_id" gorm:"not null;uniqueIndex:idx_membership_user_wedding"`
	AccessLevel string    `json:"access_level" gorm:"size:50;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GuestDetail holds a user's guest attributes for one wedding.
type GuestDetail struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_guest_detail_user_wedding"`
	WeddingID  uint      `json:"wedding_id" gorm:"not null;uniqueIndex:idx_guest_detail_user_wedding"`
	RSVPStatus string    `json:"rsvp_status" gorm:"size:32;default:'pending'"`
	Dietary    string    `json:"dietary,omitempty" gorm:"size:255"`
	PartyRole  string    `json:"party_role,omitempty" gorm:"size:64"`
	Side       string    `json:"side,omitempty" gorm:"size:32"`
	PlusOne    bool      `json:"plus_one"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
