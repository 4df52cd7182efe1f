package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wedplan/internal/access"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/response"
	"wedplan/internal/service"
)

// WeddingHandler handles wedding, guest, RSVP and budget endpoints.
type WeddingHandler struct {
	weddingService service.WeddingService
	taskService    service.TaskService
}

// NewWeddingHandler creates a new wedding handler.
func NewWeddingHandler(weddingService service.WeddingService, taskService service.TaskService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService, taskService: taskService}
}

// CreateWeddingRequest represents a wedding creation request.
type CreateWeddingRequest struct {
	Title        string          `json:"title" validate:"required"`
	Date         *time.Time      `json:"date"`
	Location     string          `json:"location"`
	BudgetTotal  decimal.Decimal `json:"budget_total"`
	PartnerEmail string          `json:"partner_email" validate:"omitempty,email"`
	PartnerName  string          `json:"partner_name"`
}

// GuestRequest represents a guest add/update request. PlusOne is a pointer so
// an update that leaves it out does not clear the stored flag.
type GuestRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	Name        string `json:"name"`
	AccessLevel string `json:"access_level" validate:"omitempty,oneof=guest weddingAdmin couple"`
	Dietary     string `json:"dietary"`
	PartyRole   string `json:"party_role"`
	Side        string `json:"side"`
	PlusOne     *bool  `json:"plus_one"`
}

// RSVPRequest represents a guest's RSVP update.
type RSVPRequest struct {
	Status  string  `json:"status" validate:"required"`
	Dietary *string `json:"dietary"`
	PlusOne *bool   `json:"plus_one"`
}

// BudgetRequest updates the wedding's total budget.
type BudgetRequest struct {
	Total decimal.Decimal `json:"total" validate:"required"`
}

// ToggleTaskRequest flips a task's completion from the wedding checklist view.
type ToggleTaskRequest struct {
	Completed bool `json:"completed"`
}

func grantFrom(c echo.Context) (*access.Grant, error) {
	grant, ok := access.GrantFrom(c)
	if !ok {
		return nil, apperrors.Internal("Access grant missing from request")
	}
	return grant, nil
}

// List godoc
// @Summary List the caller's weddings (all weddings for admins)
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /weddings [get]
func (h *WeddingHandler) List(c echo.Context) error {
	callerID, err := access.CallerID(c)
	if err != nil {
		return err
	}

	weddings, err := h.weddingService.List(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, weddings)
}

// Get godoc
// @Summary Get a wedding by id
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /weddings/{weddingId} [get]
func (h *WeddingHandler) Get(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}

	wedding, err := h.weddingService.Get(c.Request().Context(), grant)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, wedding)
}

// GetBySlug godoc
// @Summary Get a wedding by slug
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Wedding slug"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /weddings/by-slug/{slug} [get]
func (h *WeddingHandler) GetBySlug(c echo.Context) error {
	return h.Get(c)
}

// Create godoc
// @Summary Create a wedding
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateWeddingRequest true "Wedding data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /weddings [post]
func (h *WeddingHandler) Create(c echo.Context) error {
	callerID, err := access.CallerID(c)
	if err != nil {
		return err
	}

	var req CreateWeddingRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	wedding, err := h.weddingService.Create(c.Request().Context(), callerID, service.CreateWeddingInput{
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		BudgetTotal:  req.BudgetTotal,
		PartnerEmail: req.PartnerEmail,
		PartnerName:  req.PartnerName,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, wedding)
}

// AddGuest godoc
// @Summary Invite a guest to a wedding
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Param request body GuestRequest true "Guest data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /weddings/{weddingId}/guests [post]
func (h *WeddingHandler) AddGuest(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}

	var req GuestRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	guest, err := h.weddingService.AddGuest(c.Request().Context(), grant, service.GuestInput{
		Email:       req.Email,
		Name:        req.Name,
		AccessLevel: req.AccessLevel,
		Dietary:     req.Dietary,
		PartyRole:   req.PartyRole,
		Side:        req.Side,
		PlusOne:     req.PlusOne,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, guest)
}

// UpdateGuest godoc
// @Summary Update a guest's access level or details
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Param guestId path int true "Guest user ID"
// @Param request body GuestRequest true "Guest data"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /weddings/{weddingId}/guests/{guestId} [patch]
func (h *WeddingHandler) UpdateGuest(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	guestID, err := paramID(c, "guestId")
	if err != nil {
		return err
	}

	var req GuestRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	if err := h.weddingService.UpdateGuest(c.Request().Context(), grant, guestID, service.GuestInput{
		AccessLevel: req.AccessLevel,
		Dietary:     req.Dietary,
		PartyRole:   req.PartyRole,
		Side:        req.Side,
		PlusOne:     req.PlusOne,
	}); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Guest updated")
}

// DeleteGuest godoc
// @Summary Remove a guest from a wedding
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Param guestId path int true "Guest user ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /weddings/{weddingId}/guests/{guestId} [delete]
func (h *WeddingHandler) DeleteGuest(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	guestID, err := paramID(c, "guestId")
	if err != nil {
		return err
	}

	if err := h.weddingService.DeleteGuest(c.Request().Context(), grant, guestID); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Guest removed")
}

// UpdateRSVP godoc
// @Summary Update the caller's RSVP for a wedding
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Param request body RSVPRequest true "RSVP data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /weddings/{weddingId}/rsvp [patch]
func (h *WeddingHandler) UpdateRSVP(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	callerID, err := access.CallerID(c)
	if err != nil {
		return err
	}

	var req RSVPRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	detail, err := h.weddingService.UpdateRSVP(c.Request().Context(), grant, callerID, service.RSVPInput{
		Status:  req.Status,
		Dietary: req.Dietary,
		PlusOne: req.PlusOne,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, detail)
}

// UpdateBudget godoc
// @Summary Update a wedding's total budget
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weddingId path int true "Wedding ID"
// @Param request body BudgetRequest true "Budget data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /weddings/{weddingId}/budget [patch]
func (h *WeddingHandler) UpdateBudget(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	if err := h.weddingService.UpdateBudget(c.Request().Context(), grant, req.Total); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Budget updated")
}

// ToggleTask godoc
// @Summary Toggle a task's completion from the checklist view
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path int true "Task ID"
// @Param request body ToggleTaskRequest true "Completion state"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /weddings/tasks/{taskId} [patch]
func (h *WeddingHandler) ToggleTask(c echo.Context) error {
	grant, err := grantFrom(c)
	if err != nil {
		return err
	}
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return err
	}

	var req ToggleTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	task, err := h.taskService.Update(c.Request().Context(), grant, taskID, service.UpdateTaskInput{
		Completed: &req.Completed,
	})
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, task)
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperrors.Validation("Invalid " + name)
	}
	return uint(id), nil
}
