package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodlens/internal/service"
)

func setupContentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(zap.NewNop(), nil, service.NewRecommendationService(nil))

	r := gin.New()
	contentGroup := r.Group("/content")
	contentGroup.GET("/emotions", h.ListEmotions)
	contentGroup.GET("/questions", h.InitialQuestions)
	contentGroup.GET("/prompts/:category", h.JournalPrompts)
	contentGroup.POST("/triage", h.Triage)
	contentGroup.GET("/voice-prompts", h.VoicePrompts)
	contentGroup.GET("/actions/:category", h.ActionPlan)
	contentGroup.GET("/emergency", h.EmergencyResources)
	contentGroup.GET("/audio/:exercise", h.AudioScript)
	return r
}

func TestContentHandlerEmotions(t *testing.T) {
	r := setupContentRouter()

	rec := performRequest(r, http.MethodGet, "/content/emotions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Emotions []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"emotions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Emotions) != 8 {
		t.Fatalf("expected 8 emotions, got %d", len(resp.Emotions))
	}
	if resp.Emotions[0].ID != "anxious" {
		t.Fatalf("expected anxious first, got %s", resp.Emotions[0].ID)
	}
}

func TestContentHandlerQuestionsAndPrompts(t *testing.T) {
	r := setupContentRouter()

	rec := performRequest(r, http.MethodGet, "/content/questions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/content/prompts/anxious", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/content/prompts/ecstatic", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown category, got %d", rec.Code)
	}
}

func TestContentHandlerTriage(t *testing.T) {
	r := setupContentRouter()

	rec := performRequest(r, http.MethodPost, "/content/triage", map[string]any{
		"answers": map[string]string{
			"energy_level": "high",
			"thoughts":     "racing",
			"physical":     "tense",
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Category string `json:"category"`
		Prompts  []struct {
			ID string `json:"id"`
		} `json:"prompts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Category != "anxious" {
		t.Fatalf("expected anxious triage, got %s", resp.Category)
	}
	if len(resp.Prompts) != 4 {
		t.Fatalf("expected 4 prompts, got %d", len(resp.Prompts))
	}
}

func TestContentHandlerActionsAndAudio(t *testing.T) {
	r := setupContentRouter()

	rec := performRequest(r, http.MethodGet, "/content/actions/tired", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/content/audio/breathing", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/content/audio/juggling", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestContentHandlerEmergency(t *testing.T) {
	r := setupContentRouter()

	rec := performRequest(r, http.MethodGet, "/content/emergency", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Resources []struct {
			Number string `json:"number"`
		} `json:"resources"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Resources) != 4 {
		t.Fatalf("expected 4 resources, got %d", len(resp.Resources))
	}
}
