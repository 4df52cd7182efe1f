package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wedplan/internal/access"
	apperrors "wedplan/internal/errors"
	"wedplan/internal/model"
	"wedplan/internal/response"
	"wedplan/internal/service"
)

// OnboardingHandler handles the guided setup draft endpoints.
type OnboardingHandler struct {
	onboardingService service.OnboardingService
}

// NewOnboardingHandler creates a new onboarding handler.
func NewOnboardingHandler(onboardingService service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

// ProgressRequest mirrors the draft shape the SPA sends on every step.
type ProgressRequest struct {
	Step      int  `json:"step" validate:"gte=0"`
	Completed bool `json:"completed"`
	Couple    struct {
		PartnerOneName  string `json:"partner_one_name"`
		PartnerTwoName  string `json:"partner_two_name"`
		PartnerTwoEmail string `json:"partner_two_email" validate:"omitempty,email"`
	} `json:"couple"`
	Wedding struct {
		Title       string          `json:"title"`
		Date        *time.Time      `json:"date"`
		Location    string          `json:"location"`
		BudgetTotal decimal.Decimal `json:"budget_total"`
	} `json:"wedding"`
}

// GetProgress godoc
// @Summary Get the caller's onboarding draft
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /onboarding/progress [get]
func (h *OnboardingHandler) GetProgress(c echo.Context) error {
	callerID, err := access.CallerID(c)
	if err != nil {
		return err
	}

	progress, err := h.onboardingService.GetProgress(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, progress)
}

// PutProgress godoc
// @Summary Upsert the caller's onboarding draft
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProgressRequest true "Draft state"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /onboarding/progress [put]
func (h *OnboardingHandler) PutProgress(c echo.Context) error {
	callerID, err := access.CallerID(c)
	if err != nil {
		return err
	}

	var req ProgressRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	progress := &model.OnboardingProgress{
		Step:      req.Step,
		Completed: req.Completed,
		Couple: model.OnboardingCouple{
			PartnerOneName:  req.Couple.PartnerOneName,
			PartnerTwoName:  req.Couple.PartnerTwoName,
			PartnerTwoEmail: req.Couple.PartnerTwoEmail,
		},
		Wedding: model.OnboardingWedding{
			Title:       req.Wedding.Title,
			Date:        req.Wedding.Date,
			Location:    req.Wedding.Location,
			BudgetTotal: req.Wedding.BudgetTotal,
		},
	}

	saved, err := h.onboardingService.PutProgress(c.Request().Context(), callerID, progress)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, saved)
}
