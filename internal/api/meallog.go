package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kinlog/backend/internal/service"
	"github.com/kinlog/backend/internal/types"
)

// MealLogHandler handles the analyze/confirm/list/delete lifecycle of meal logs
type MealLogHandler struct {
	mealLogService *service.MealLogService
}

// NewMealLogHandler creates a new MealLogHandler
func NewMealLogHandler(mealLogService *service.MealLogService) *MealLogHandler {
	return &MealLogHandler{
		mealLogService: mealLogService,
	}
}

// RegisterRoutes registers the meal log routes
func (h *MealLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/meal-logs")
	{
		logs.POST("/analyze", h.Analyze)
		logs.POST("/confirm", h.Confirm)
		logs.GET("", h.List)
		logs.GET("/:id/match", h.GetMatch)
		logs.DELETE("/:id", h.Delete)
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// Analyze runs recognition on an uploaded photo and stores a pending log.
// A missing dish match is a normal 200 response with "match": null; the
// client then shows the raw recognizer output without auto-fill.
func (h *MealLogHandler) Analyze(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
		return
	}

	result, err := h.mealLogService.Analyze(c.Request.Context(), userID, req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrMissingImageURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
			return
		}
		// Recognizer or storage trouble; nothing the client did wrong.
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to analyze image"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Confirm finalizes a pending log with the chosen portion. Confirmation
// overwrites any earlier confirmation, so blind client retries are safe in
// effect but not encouraged.
func (h *MealLogHandler) Confirm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "log_id and portion are required"})
		return
	}

	logID, err := uuid.Parse(req.LogID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log_id"})
		return
	}

	confirmed, err := h.mealLogService.Confirm(c.Request.Context(), userID, logID, req.Portion)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPortion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "portion must be a positive number"})
		case errors.Is(err, service.ErrLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log not found"})
		case errors.Is(err, service.ErrNoDishMatch):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log has no dish match to confirm"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm meal"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"log_id":    confirmed.LogID,
		"dish_name": confirmed.DishName,
		"portion":   confirmed.Portion,
		"calories":  confirmed.Calories,
		"protein":   confirmed.Protein,
		"fat":       confirmed.Fat,
		"carbs":     confirmed.Carbs,
	})
}

func (h *MealLogHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.mealLogService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meal logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetMatch serves the stored dish match for a log so the confirmation screen
// can render without re-running analysis.
func (h *MealLogHandler) GetMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	match, err := h.mealLogService.GetPendingMatch(c.Request.Context(), userID, logID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log not found"})
		case errors.Is(err, service.ErrNoDishMatch):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log has no dish match"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load match"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

func (h *MealLogHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := h.mealLogService.Delete(c.Request.Context(), userID, logID); err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
