package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Task is a checklist item doubling as a budget line under one category.
type Task struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	WeddingID        uint            `json:"wedding_id" gorm:"not null;index"`
	BudgetCategoryID uint            `json:"budget_category_id" gorm:"not null;index"`
	Title            string          `json:"title" gorm:"size:255;not null"`
	Budget           decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);not null;default:0"`
	ActualCost       decimal.Decimal `json:"actual_cost" gorm:"type:decimal(20,2);not null;default:0"`
	Completed        bool            `json:"completed" gorm:"default:false"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
