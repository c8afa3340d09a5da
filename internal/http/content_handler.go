package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodlens/internal/content"
	"moodlens/internal/emotion"
	"moodlens/internal/service"
)

// ContentHandler expone el material estático del check-in guiado.
type ContentHandler struct {
	logger      *zap.Logger
	catalog     *content.QuestionCatalog
	recommender *service.RecommendationService
}

func NewContentHandler(logger *zap.Logger, catalog *content.QuestionCatalog, recommender *service.RecommendationService) *ContentHandler {
	if catalog == nil {
		catalog = content.NewQuestionCatalog()
	}
	return &ContentHandler{
		logger:      logger,
		catalog:     catalog,
		recommender: recommender,
	}
}

// ListEmotions maneja GET /content/emotions.
func (h *ContentHandler) ListEmotions(c *gin.Context) {
	categories := emotion.Categories()
	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		meta := emotion.Metadata(cat)
		out = append(out, gin.H{
			"id":          cat,
			"label":       meta.Label,
			"glyph":       meta.Glyph,
			"description": meta.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"emotions": out})
}

// InitialQuestions maneja GET /content/questions.
func (h *ContentHandler) InitialQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.catalog.InitialQuestions()})
}

// JournalPrompts maneja GET /content/prompts/:category.
func (h *ContentHandler) JournalPrompts(c *gin.Context) {
	category, ok := emotion.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": h.catalog.JournalPrompts(category)})
}

// Triage maneja POST /content/triage: a partir de las respuestas iniciales
// devuelve la categoría preliminar y sus consignas de journaling.
func (h *ContentHandler) Triage(c *gin.Context) {
	var req struct {
		Answers map[string]string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid triage request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	category := h.catalog.TriageCategory(req.Answers)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"prompts":  h.catalog.JournalPrompts(category),
	})
}

// VoicePrompts maneja GET /content/voice-prompts.
func (h *ContentHandler) VoicePrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prompts": h.catalog.VoicePrompts()})
}

// ActionPlan maneja GET /content/actions/:category.
func (h *ContentHandler) ActionPlan(c *gin.Context) {
	category, ok := emotion.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": h.recommender.PlanFor(category)})
}

// EmergencyResources maneja GET /content/emergency.
func (h *ContentHandler) EmergencyResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": h.recommender.EmergencyResources()})
}

// AudioScript maneja GET /content/audio/:exercise.
func (h *ContentHandler) AudioScript(c *gin.Context) {
	script := h.recommender.AudioScript(c.Param("exercise"))
	if script == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown exercise"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"script": script})
}
