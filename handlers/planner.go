package handlers

import (
	"errors"
	"net/http"

	"tripforge/models"
	"tripforge/services/planner"
	"tripforge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the planning session lifecycle over HTTP.
type PlannerHandler struct {
	Service planner.PlannerService
	Logger  *zap.Logger
}

func NewPlannerHandler(svc planner.PlannerService, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{Service: svc, Logger: logger}
}

// CreateSessionHandler opens a fresh IDLE session.
func (h *PlannerHandler) CreateSessionHandler(c *gin.Context) {
	sess, err := h.Service.CreateSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to create planner session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, planner.BuildSessionView(sess))
}

// GetSessionHandler returns the full session view.
func (h *PlannerHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, planner.BuildSessionView(sess))
}

// GenerateItineraryHandler submits trip input for a session. A provider
// failure is not an HTTP failure: the session comes back in the ERROR
// state carrying the user-facing message.
func (h *PlannerHandler) GenerateItineraryHandler(c *gin.Context) {
	var input models.TripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Service.GenerateItinerary(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, planner.BuildSessionView(sess))
}

// UpdateCostHandler upserts one cost override cell.
func (h *PlannerHandler) UpdateCostHandler(c *gin.Context) {
	var input struct {
		DayIndex      int `json:"dayIndex" binding:"min=0"`
		ActivityIndex int `json:"activityIndex" binding:"min=0"`
		Value         any `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Service.UpdateCost(c.Request.Context(), c.Param("sessionID"), input.DayIndex, input.ActivityIndex, input.Value)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, planner.BuildSessionView(sess))
}

// DismissErrorHandler acknowledges a failure and returns to IDLE.
func (h *PlannerHandler) DismissErrorHandler(c *gin.Context) {
	sess, err := h.Service.DismissError(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, planner.BuildSessionView(sess))
}

// CurrencyOptionsHandler returns the budget slider configuration per
// supported currency; clients reset the slider to Default on change.
func (h *PlannerHandler) CurrencyOptionsHandler(c *gin.Context) {
	options := models.CurrencyOptions()
	views := make([]models.CurrencyOptionView, 0, len(options))
	for _, opt := range options {
		views = append(views, models.CurrencyOptionView{
			CurrencyOption: opt,
			MaxDisplay:     utils.FormatMoney(opt.Max, opt.Code),
			DefaultDisplay: utils.FormatMoney(opt.Default, opt.Code),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"defaultCurrency": models.DefaultCurrency,
		"currencies":      views,
	})
}

func (h *PlannerHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": planner.ErrSessionNotFound.Error()})
	case errors.Is(err, planner.ErrGenerationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": planner.ErrGenerationInFlight.Error()})
	case errors.Is(err, planner.ErrNoItinerary):
		c.JSON(http.StatusConflict, gin.H{"error": planner.ErrNoItinerary.Error()})
	case errors.Is(err, planner.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": planner.ErrActivityNotFound.Error()})
	default:
		h.Logger.Error("Planner request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
