package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodlens/internal/emotion"
	"moodlens/internal/service"
)

// CheckInHandler mantiene dependencias para endpoints de check-ins.
type CheckInHandler struct {
	logger      *zap.Logger
	detections  *service.DetectionService
	patterns    *service.PatternService
	recommender *service.RecommendationService
}

func NewCheckInHandler(
	logger *zap.Logger,
	detections *service.DetectionService,
	patterns *service.PatternService,
	recommender *service.RecommendationService,
) *CheckInHandler {
	return &CheckInHandler{
		logger:      logger,
		detections:  detections,
		patterns:    patterns,
		recommender: recommender,
	}
}

// CreateCheckIn maneja POST /checkins. Todas las fuentes son opcionales:
// sin ninguna señal la detección cae en calm con confianza cero.
func (h *CheckInHandler) CreateCheckIn(c *gin.Context) {
	var req struct {
		Answers map[string]string  `json:"answers"`
		Journal map[string]string  `json:"journal"`
		Face    map[string]float64 `json:"face"`
		Voice   map[string]float64 `json:"voice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid check-in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	checkIn, result, err := h.detections.PerformCheckIn(c.Request.Context(), claims.UserID, emotion.DetectionInput{
		Answers: req.Answers,
		Journal: req.Journal,
		Face:    req.Face,
		Voice:   req.Voice,
	})
	if err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many check-ins"})
			return
		}
		h.logger.Error("check-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record check-in"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"check_in": checkIn,
		"emotion": gin.H{
			"category":    result.Category,
			"label":       result.Label,
			"glyph":       result.Glyph,
			"description": result.Description,
			"confidence":  result.Confidence,
			"indicators":  result.Indicators,
			"quality":     result.Quality,
			"sources":     result.Sources,
		},
		"actions": h.recommender.PlanFor(result.Category),
	})
}

// ListCheckIns maneja GET /checkins.
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	checkIns, err := h.detections.ListCheckIns(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		h.logger.Error("list check-ins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list check-ins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_ins": checkIns})
}

// GetCheckIn maneja GET /checkins/:id.
func (h *CheckInHandler) GetCheckIn(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	checkIn, err := h.detections.GetCheckIn(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCheckInNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check-in not found"})
			return
		}
		h.logger.Error("get check-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get check-in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_in": checkIn})
}

// SimilarCheckIns maneja GET /checkins/:id/similar.
func (h *CheckInHandler) SimilarCheckIns(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	k, _ := strconv.Atoi(c.DefaultQuery("k", "5"))

	similar, err := h.detections.SimilarCheckIns(c.Request.Context(), claims.UserID, c.Param("id"), k)
	if err != nil {
		if errors.Is(err, service.ErrCheckInNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check-in not found"})
			return
		}
		h.logger.Error("similar check-ins failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search check-ins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"similar": similar})
}

// PatternSummary maneja GET /patterns/summary.
func (h *CheckInHandler) PatternSummary(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	summary, err := h.patterns.Summary(c.Request.Context(), claims.UserID, days)
	if err != nil {
		h.logger.Error("pattern summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// EmotionHistory maneja GET /patterns/history/:category.
func (h *CheckInHandler) EmotionHistory(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	category, ok := emotion.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	history, err := h.patterns.EmotionHistory(c.Request.Context(), claims.UserID, category, days)
	if err != nil {
		h.logger.Error("emotion history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
