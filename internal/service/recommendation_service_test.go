package service

import (
	"testing"

	"moodlens/internal/emotion"
)

func TestRecommendationPlanFormatting(t *testing.T) {
	svc := NewRecommendationService(nil)

	plan := svc.PlanFor(emotion.CategoryAnxious)
	if len(plan.Immediate) != 3 || len(plan.ShortTerm) != 3 {
		t.Fatalf("expected 3+3 actions, got %d+%d", len(plan.Immediate), len(plan.ShortTerm))
	}
	first := plan.Immediate[0]
	if first.Name != "3 Deep Breaths" || first.TypeName != "Breathing Exercise" || first.TypeIcon == "" {
		t.Fatalf("unexpected formatted action: %+v", first)
	}
}

func TestRecommendationAudioScripts(t *testing.T) {
	svc := NewRecommendationService(nil)

	if len(svc.AudioScript("breathing")) == 0 {
		t.Fatalf("expected breathing script")
	}
	if len(svc.AudioScript("grounding")) == 0 {
		t.Fatalf("expected grounding script")
	}
	if len(svc.AudioScript("body_scan")) == 0 {
		t.Fatalf("expected body scan script")
	}
	if svc.AudioScript("juggling") != nil {
		t.Fatalf("expected nil for unknown exercise")
	}
}

func TestRecommendationEmergencyResources(t *testing.T) {
	svc := NewRecommendationService(nil)

	if len(svc.EmergencyResources()) != 4 {
		t.Fatalf("expected 4 emergency resources")
	}
}
