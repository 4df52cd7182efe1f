package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "wedplan/internal/errors"
	"wedplan/internal/response"
	"wedplan/internal/service"
)

// TaskHandler handles task CRUD endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest is the full task payload, shared by create and replace.
type CreateTaskRequest struct {
	Title            string          `json:"title" validate:"required"`
	BudgetCategoryID uint            `json:"budget_category_id" validate:"required"`
	Budget           decimal.Decimal `json:"budget"`
	ActualCost       decimal.Decimal `json:"actual_cost"`
	Completed        bool            `json:"completed"`
	DueDate          *time.Time      `json:"due_date"`
}

// UpdateTaskRequest is a partial task edit; absent fields stay untouched.
type UpdateTaskRequest struct {
	Title            *string          `json:"title"`
	BudgetCategoryID *uint            `json:"budget_category_id"`
	Budget           *decimal.Decimal `json:"budget"`
	ActualCost       *decimal.Decimal `json:"actual_cost"`
	Completed        *bool            `json:"completed"`
	DueDate          *time.Time       `json:"due_date"`
}

// Create godoc
// @Summary Create a task under a wedding's budget category
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{weddingId} [post]
func (h *TaskHandler) Create(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), grant, service.CreateTaskInput{
		Title:            req.Title,
		BudgetCategoryID: req.BudgetCategoryID,
		Budget:           req.Budget,
		ActualCost:       req.ActualCost,
		Completed:        req.Completed,
		DueDate:          req.DueDate,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, task)
}

// Update godoc
// @Summary Partially update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path int true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{taskId} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	task, err := h.taskService.Update(c.Request().Context(), grant, taskID, service.UpdateTaskInput{
		Title:            req.Title,
		BudgetCategoryID: req.BudgetCategoryID,
		Budget:           req.Budget,
		ActualCost:       req.ActualCost,
		Completed:        req.Completed,
		DueDate:          req.DueDate,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, task)
}

// Replace godoc
// @Summary Replace a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path int true "Task ID"
// @Param request body CreateTaskRequest true "Full task data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{taskId} [put]
func (h *TaskHandler) Replace(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	task, err := h.taskService.Replace(c.Request().Context(), grant, taskID, service.CreateTaskInput{
		Title:            req.Title,
		BudgetCategoryID: req.BudgetCategoryID,
		Budget:           req.Budget,
		ActualCost:       req.ActualCost,
		Completed:        req.Completed,
		DueDate:          req.DueDate,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskId path int true "Task ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), grant, taskID); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Task deleted")
}
