package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCategoryNames is the fixed set of categories every wedding is seeded
// with. Tasks attach to exactly one of these.
var BudgetCategoryNames = []string{
	"venue",
	"catering",
	"photography",
	"videography",
	"music",
	"flowers",
	"attire",
	"beauty",
	"transport",
	"stationery",
	"rings",
	"decor",
	"favors",
	"honeymoon",
	"other",
}

// ValidBudgetCategory reports whether name is one of the fixed categories.
func ValidBudgetCategory(name string) bool {
	for _, n := range BudgetCategoryNames {
		if n == name {
			return true
		}
	}
	return false
}

// Wedding is a planning space owned by one or more couple members.
type Wedding struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Slug        string          `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Date        *time.Time      `json:"date,omitempty"`
	Location    string          `json:"location,omitempty" gorm:"size:255"`
	BudgetTotal decimal.Decimal `json:"budget_total" gorm:"type:decimal(20,2);not null;default:0"`
	BudgetSpent decimal.Decimal `json:"budget_spent" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Couple           []User           `json:"couple,omitempty" gorm:"many2many:wedding_couples"`
	BudgetCategories []BudgetCategory `json:"budget_categories,omitempty" gorm:"foreignKey:WeddingID"`
	Tasks            []Task           `json:"tasks,omitempty" gorm:"foreignKey:WeddingID"`
}

// BudgetCategory groups tasks under a wedding with an estimated/spent rollup.
// Spent and Progress are recomputed from task actual costs on every task
// mutation.
type BudgetCategory struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	WeddingID     uint            `json:"wedding_id" gorm:"not null;index"`
	Name          string          `json:"name" gorm:"size:64;not null"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" gorm:"type:decimal(20,2);not null;default:0"`
	Spent         decimal.Decimal `json:"spent" gorm:"type:decimal(20,2);not null;default:0"`
	Progress      float64         `json:"progress" gorm:"not null;default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relations
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:BudgetCategoryID"`
}
