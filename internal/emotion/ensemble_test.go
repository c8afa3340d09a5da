package emotion

import (
	"math"
	"testing"
)

func TestEnsemblePerCategoryWeightedAverage(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	result := engine.Fuse([]ModalityReport{
		{
			Modality:   ModalityText,
			Signal:     SignalOf(ScoreMap{CategoryAnxious: 0.8, CategoryCalm: 0.2}),
			Confidence: 0.9,
		},
		{
			Modality: ModalityFace,
			Signal:   SignalOf(ScoreMap{CategoryAnxious: 0.6}),
		},
	})

	// text: base 1.0 + 0.1 por confianza alta, tope 1.0. face: 0.7.
	// anxious = (0.8*1.0 + 0.6*0.7) / 1.7
	wantAnxious := (0.8 + 0.42) / 1.7
	if math.Abs(result.Scores[CategoryAnxious]-wantAnxious) > 1e-9 {
		t.Fatalf("expected anxious %f, got %f", wantAnxious, result.Scores[CategoryAnxious])
	}

	// calm solo la trae text: promedio puro de esa fuente, pese quien pese.
	if math.Abs(result.Scores[CategoryCalm]-0.2) > 1e-9 {
		t.Fatalf("expected calm 0.2 from single source, got %f", result.Scores[CategoryCalm])
	}

	if result.Dominant != CategoryAnxious {
		t.Fatalf("expected anxious dominant, got %s", result.Dominant)
	}
}

func TestEnsembleSingleSourceCategoryIsPure(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	result := engine.Fuse([]ModalityReport{
		{Modality: ModalityText, Signal: SignalOf(ScoreMap{CategorySad: 0.9})},
		{Modality: ModalityFace, Signal: SignalOf(ScoreMap{CategoryTired: 0.4})},
	})

	if math.Abs(result.Scores[CategoryTired]-0.4) > 1e-9 {
		t.Fatalf("tired must come purely from face: %f", result.Scores[CategoryTired])
	}
	if math.Abs(result.Scores[CategorySad]-0.9) > 1e-9 {
		t.Fatalf("sad must come purely from text: %f", result.Scores[CategorySad])
	}
}

func TestEnsembleEffectiveWeightBoostsAndCap(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	base := engine.effectiveWeight(ModalityReport{Modality: ModalityVoice})
	if base != 0.8 {
		t.Fatalf("expected base 0.8 for voice, got %f", base)
	}

	boosted := engine.effectiveWeight(ModalityReport{
		Modality:      ModalityVoice,
		Confidence:    0.9,
		QualitySignal: true,
	})
	if boosted != 1.0 {
		t.Fatalf("expected 0.8+0.1+0.1 = 1.0, got %f", boosted)
	}

	capped := engine.effectiveWeight(ModalityReport{
		Modality:      ModalityText,
		Confidence:    0.9,
		QualitySignal: true,
	})
	if capped != 1.0 {
		t.Fatalf("expected cap at 1.0, got %f", capped)
	}

	unknown := engine.effectiveWeight(ModalityReport{Modality: Modality("gesture")})
	if unknown != ensembleFallbackWeight {
		t.Fatalf("expected fallback weight, got %f", unknown)
	}
}

func TestEnsembleAgreementConfidence(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	result := engine.Fuse([]ModalityReport{
		{Modality: ModalityText, Signal: SignalOf(ScoreMap{CategoryAnxious: 0.8}), Confidence: 0.9},
		{Modality: ModalityFace, Signal: SignalOf(ScoreMap{CategoryAnxious: 0.6})},
	})

	// Acuerdo 2/2 = 1.0 más boost de text (peso > 0.8 y puntaje > 0.5),
	// con tope en 1.0.
	if result.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %f", result.Confidence)
	}
}

func TestEnsembleDisagreementLowersConfidence(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	result := engine.Fuse([]ModalityReport{
		{Modality: ModalityText, Signal: SignalOf(ScoreMap{CategorySad: 0.9})},
		{Modality: ModalityFace, Signal: SignalOf(ScoreMap{CategoryHappy: 0.8})},
		{Modality: ModalityVoice, Signal: SignalOf(ScoreMap{CategoryCalm: 0.7})},
	})

	if result.Confidence >= 0.5 {
		t.Fatalf("expected low confidence on full disagreement, got %f", result.Confidence)
	}
}

func TestEnsembleAllAbsentFailsClosed(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	result := engine.Fuse([]ModalityReport{
		{Modality: ModalityText, Signal: NoSignal()},
		{Modality: ModalityFace, Signal: NoSignal()},
	})

	if result.Dominant != CategoryCalm || result.Confidence != 0 {
		t.Fatalf("expected calm at 0 confidence, got %s %f", result.Dominant, result.Confidence)
	}
	if result.Quality != QualityVeryLow {
		t.Fatalf("expected very_low quality, got %s", result.Quality)
	}
}

func TestEnsembleQualityTag(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	// 3 modalidades de acuerdo con pesos altos: calidad alta.
	high := engine.Fuse([]ModalityReport{
		{Modality: ModalityText, Signal: SignalOf(ScoreMap{CategoryAnxious: 0.9}), Confidence: 0.9},
		{Modality: ModalityVoice, Signal: SignalOf(ScoreMap{CategoryAnxious: 0.8}), Confidence: 0.9, QualitySignal: true},
		{Modality: ModalityFace, Signal: SignalOf(ScoreMap{CategoryAnxious: 0.7})},
	})
	if high.Quality != QualityHigh {
		t.Fatalf("expected high quality, got %s", high.Quality)
	}

	// Una sola modalidad floja que ni se respalda a sí misma: muy baja.
	low := engine.Fuse([]ModalityReport{
		{Modality: ModalityFace, Signal: SignalOf(ScoreMap{CategoryNeutral: 0.2})},
	})
	if low.Quality != QualityVeryLow {
		t.Fatalf("expected very_low quality, got %s", low.Quality)
	}
}

func TestEnsembleTieBreaksByRegistryOrder(t *testing.T) {
	engine := NewEnsembleEngine(nil)

	result := engine.Fuse([]ModalityReport{
		{Modality: ModalityText, Signal: SignalOf(ScoreMap{CategoryHappy: 0.6, CategorySad: 0.6})},
	})

	if result.Dominant != CategorySad {
		t.Fatalf("expected sad by registry order, got %s", result.Dominant)
	}
}
