package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OnboardingProgress is the per-user draft state of the guided setup flow.
// It lives in redis with a 7-day TTL, never in the database.
type OnboardingProgress struct {
	Step      int               `json:"step"`
	Completed bool              `json:"completed"`
	Couple    OnboardingCouple  `json:"couple"`
	Wedding   OnboardingWedding `json:"wedding"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// OnboardingCouple is the partially filled couple info collected during setup.
type OnboardingCouple struct {
	PartnerOneName  string `json:"partner_one_name,omitempty"`
	PartnerTwoName  string `json:"partner_two_name,omitempty"`
	PartnerTwoEmail string `json:"partner_two_email,omitempty"`
}

// OnboardingWedding is the partially filled wedding info collected during setup.
type OnboardingWedding struct {
	Title       string          `json:"title,omitempty"`
	Date        *time.Time      `json:"date,omitempty"`
	Location    string          `json:"location,omitempty"`
	BudgetTotal decimal.Decimal `json:"budget_total"`
}
