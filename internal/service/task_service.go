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
)

// CreateTaskInput carries the full field set of a task; Create and Replace
// both take it.
type CreateTaskInput struct {
	Title            string
	BudgetCategoryID uint
	Budget           decimal.Decimal
	ActualCost       decimal.Decimal
	Completed        bool
	DueDate          *time.Time
}

// UpdateTaskInput is a partial update: only non-nil fields are applied, so a
// completion toggle never touches the cost fields.
type UpdateTaskInput struct {
	Title            *string
	BudgetCategoryID *uint
	Budget           *decimal.Decimal
	ActualCost       *decimal.Decimal
	Completed        *bool
	DueDate          *time.Time
}

// TaskService manages checklist/budget line items. Every cost mutation
// recomputes the owning category's spent/progress rollup and the wedding's
// total spent.
type TaskService interface {
	Create(ctx context.Context, grant *access.Grant, input CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, grant *access.Grant, taskID uint, input UpdateTaskInput) (*model.Task, error)
	Replace(ctx context.Context, grant *access.Grant, taskID uint, input CreateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, grant *access.Grant, taskID uint) error
}

type taskService struct {
	tasks    repository.TaskRepository
	weddings repository.WeddingRepository
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository, weddings repository.WeddingRepository) TaskService {
	return &taskService{tasks: tasks, weddings: weddings}
}

// Create adds a task under the resolved wedding and one of its categories.
func (s *taskService) Create(ctx context.Context, grant *access.Grant, input CreateTaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, apperrors.Validation("Title is required")
	}

	category, err := s.weddings.FindCategory(ctx, grant.Wedding.ID, input.BudgetCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Budget category not found on this wedding")
		}
		return nil, err
	}

	task := &model.Task{
		WeddingID:        grant.Wedding.ID,
		BudgetCategoryID: category.ID,
		Title:            input.Title,
		Budget:           input.Budget,
		ActualCost:       input.ActualCost,
		Completed:        input.Completed,
		DueDate:          input.DueDate,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if err := s.recomputeRollups(ctx, grant.Wedding, category.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial edit to a task.
func (s *taskService) Update(ctx context.Context, grant *access.Grant, taskID uint, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.findOwnedTask(ctx, grant, taskID)
	if err != nil {
		return nil, err
	}

	costsChanged := false
	categoryToRefresh := task.BudgetCategoryID

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.BudgetCategoryID != nil && *input.BudgetCategoryID != task.BudgetCategoryID {
		category, err := s.weddings.FindCategory(ctx, grant.Wedding.ID, *input.BudgetCategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Budget category not found on this wedding")
			}
			return nil, err
		}
		task.BudgetCategoryID = category.ID
		costsChanged = true
	}
	if input.Budget != nil {
		task.Budget = *input.Budget
	}
	if input.ActualCost != nil {
		task.ActualCost = *input.ActualCost
		costsChanged = true
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if costsChanged {
		if err := s.recomputeRollups(ctx, grant.Wedding, categoryToRefresh); err != nil {
			return nil, err
		}
		if task.BudgetCategoryID != categoryToRefresh {
			if err := s.recomputeRollups(ctx, grant.Wedding, task.BudgetCategoryID); err != nil {
				return nil, err
			}
		}
	}
	return task, nil
}

// Replace overwrites every mutable field of a task.
func (s *taskService) Replace(ctx context.Context, grant *access.Grant, taskID uint, input CreateTaskInput) (*model.Task, error) {
	task, err := s.findOwnedTask(ctx, grant, taskID)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, apperrors.Validation("Title is required")
	}

	previousCategory := task.BudgetCategoryID
	category, err := s.weddings.FindCategory(ctx, grant.Wedding.ID, input.BudgetCategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Budget category not found on this wedding")
		}
		return nil, err
	}

	task.Title = input.Title
	task.BudgetCategoryID = category.ID
	task.Budget = input.Budget
	task.ActualCost = input.ActualCost
	task.Completed = input.Completed
	task.DueDate = input.DueDate

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if err := s.recomputeRollups(ctx, grant.Wedding, previousCategory); err != nil {
		return nil, err
	}
	if task.BudgetCategoryID != previousCategory {
		if err := s.recomputeRollups(ctx, grant.Wedding, task.BudgetCategoryID); err != nil {
			return nil, err
		}
	}
	return task, nil
}

// Delete removes a task and refreshes the rollups it contributed to.
func (s *taskService) Delete(ctx context.Context, grant *access.Grant, taskID uint) error {
	task, err := s.findOwnedTask(ctx, grant, taskID)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return s.recomputeRollups(ctx, grant.Wedding, task.BudgetCategoryID)
}

// findOwnedTask fetches a task and verifies it belongs to the resolved
// wedding; a task from another wedding is indistinguishable from a missing
// one.
func (s *taskService) findOwnedTask(ctx context.Context, grant *access.Grant, taskID uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task not found")
		}
		return nil, err
	}
	if task.WeddingID != grant.Wedding.ID {
		return nil, apperrors.NotFound("Task not found")
	}
	return task, nil
}

// recomputeRollups recalculates the category's spent/progress from its tasks
// and the wedding's spent from all tasks. Sequential writes, no transaction.
func (s *taskService) recomputeRollups(ctx context.Context, wedding *model.Wedding, categoryID uint) error {
	categoryTasks, err := s.tasks.ListByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("list category tasks: %w", err)
	}
	spent := decimal.Zero
	for _, t := range categoryTasks {
		spent = spent.Add(t.ActualCost)
	}

	category, err := s.weddings.FindCategory(ctx, wedding.ID, categoryID)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	category.Spent = spent
	if category.EstimatedCost.IsPositive() {
		progress, _ := spent.Div(category.EstimatedCost).Float64()
		category.Progress = progress
	} else {
		category.Progress = 0
	}
	if err := s.weddings.SaveCategory(ctx, category); err != nil {
		return fmt.Errorf("save category: %w", err)
	}

	weddingTasks, err := s.tasks.ListByWedding(ctx, wedding.ID)
	if err != nil {
		return fmt.Errorf("list wedding tasks: %w", err)
	}
	totalSpent := decimal.Zero
	for _, t := range weddingTasks {
		totalSpent = totalSpent.Add(t.ActualCost)
	}
	return s.weddings.UpdateBudget(ctx, wedding.ID, wedding.BudgetTotal, totalSpent)
}
