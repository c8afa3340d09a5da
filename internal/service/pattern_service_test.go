package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"moodlens/internal/domain"
	"moodlens/internal/emotion"
)

func seedCheckIn(repo *mockCheckInRepo, userID, category string, createdAt time.Time) {
	id := category + "-" + createdAt.Format(time.RFC3339Nano)
	repo.byID[id] = domain.CheckIn{
		ID:        id,
		UserID:    userID,
		Category:  category,
		CreatedAt: createdAt,
	}
	repo.order = append(repo.order, id)
}

func TestPatternSummaryEmpty(t *testing.T) {
	svc := NewPatternService(zap.NewNop(), newMockCheckInRepo())

	summary, err := svc.Summary(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalCheckIns != 0 {
		t.Fatalf("expected 0 check-ins, got %d", summary.TotalCheckIns)
	}
	if len(summary.EmotionSummary) != 0 || len(summary.Insights) != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
	if summary.TimeRange != "Last 7 days" {
		t.Fatalf("unexpected time range %q", summary.TimeRange)
	}
}

func TestPatternSummaryCountsAndPercentages(t *testing.T) {
	repo := newMockCheckInRepo()
	now := time.Now().UTC()
	seedCheckIn(repo, "u1", "anxious", now.Add(-3*time.Hour))
	seedCheckIn(repo, "u1", "anxious", now.Add(-2*time.Hour))
	seedCheckIn(repo, "u1", "calm", now.Add(-1*time.Hour))
	// Fuera de ventana: no cuenta.
	seedCheckIn(repo, "u1", "sad", now.AddDate(0, 0, -30))
	// De otro usuario: no cuenta.
	seedCheckIn(repo, "u2", "happy", now.Add(-1*time.Hour))

	svc := NewPatternService(zap.NewNop(), repo)
	summary, err := svc.Summary(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalCheckIns != 3 {
		t.Fatalf("expected 3 check-ins, got %d", summary.TotalCheckIns)
	}
	anxious := summary.EmotionSummary["anxious"]
	if anxious.Count != 2 || anxious.Percentage != 66.7 {
		t.Fatalf("unexpected anxious stat: %+v", anxious)
	}
	calm := summary.EmotionSummary["calm"]
	if calm.Count != 1 || calm.Percentage != 33.3 {
		t.Fatalf("unexpected calm stat: %+v", calm)
	}
}

func TestPatternSummaryInsights(t *testing.T) {
	repo := newMockCheckInRepo()
	now := time.Now().UTC()
	for i := 3; i >= 1; i-- {
		seedCheckIn(repo, "u1", "tired", now.Add(-time.Duration(i)*time.Minute))
	}

	svc := NewPatternService(zap.NewNop(), repo)
	summary, err := svc.Summary(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	types := map[string]bool{}
	for _, in := range summary.Insights {
		types[in.Type] = true
	}
	if !types["most_common_emotion"] {
		t.Fatalf("expected most_common_emotion insight, got %+v", summary.Insights)
	}
	// Tres check-ins seguidos con la misma categoría generan racha.
	if !types["recent_trend"] {
		t.Fatalf("expected recent_trend insight, got %+v", summary.Insights)
	}
}

func TestPatternSummaryRecommendations(t *testing.T) {
	repo := newMockCheckInRepo()
	now := time.Now().UTC()
	for i := 5; i >= 1; i-- {
		seedCheckIn(repo, "u1", "anxious", now.Add(-time.Duration(i)*time.Hour))
	}

	svc := NewPatternService(zap.NewNop(), repo)
	summary, err := svc.Summary(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary.Recommendations) == 0 || len(summary.Recommendations) > 3 {
		t.Fatalf("expected 1-3 recommendations, got %v", summary.Recommendations)
	}
	// Más del 50% anxious: la primera recomendación apunta al estrés.
	if summary.Recommendations[0] != "Consider daily stress management techniques" {
		t.Fatalf("unexpected first recommendation %q", summary.Recommendations[0])
	}
}

func TestEmotionHistoryFilters(t *testing.T) {
	repo := newMockCheckInRepo()
	now := time.Now().UTC()
	seedCheckIn(repo, "u1", "sad", now.Add(-2*time.Hour))
	seedCheckIn(repo, "u1", "happy", now.Add(-1*time.Hour))

	svc := NewPatternService(zap.NewNop(), repo)
	history, err := svc.EmotionHistory(context.Background(), "u1", emotion.CategorySad, 30)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Category != "sad" {
		t.Fatalf("unexpected history: %+v", history)
	}
}
