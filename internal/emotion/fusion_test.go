package emotion

import (
	"math"
	"reflect"
	"testing"
)

func TestFuseWeightedSumWithoutRenormalization(t *testing.T) {
	engine := NewFusionEngine(nil)

	answers := NewScoreMap()
	answers[CategoryAnxious] = 1.0
	journal := NewScoreMap()
	journal[CategoryAnxious] = 1.0

	result := engine.Fuse([]SourceContribution{
		engine.Contribute(SourceAnswers, SignalOf(answers)),
		engine.Contribute(SourceJournal, SignalOf(journal)),
		engine.Contribute(SourceFace, NoSignal()),
		engine.Contribute(SourceVoice, NoSignal()),
	})

	// Con cara y voz ausentes los pesos NO se redistribuyen:
	// 1.0*0.3 + 1.0*0.4 = 0.7, por debajo de 1.0 a propósito.
	if math.Abs(result.Scores[CategoryAnxious]-0.7) > 1e-9 {
		t.Fatalf("expected fused anxious 0.7, got %f", result.Scores[CategoryAnxious])
	}
	if result.Dominant != CategoryAnxious {
		t.Fatalf("expected anxious dominant, got %s", result.Dominant)
	}
	if len(result.Sources) != 2 {
		t.Fatalf("expected 2 contributing sources, got %v", result.Sources)
	}
}

func TestFuseIsDeterministic(t *testing.T) {
	engine := NewFusionEngine(nil)

	build := func() []SourceContribution {
		answers := NewScoreMap()
		answers[CategorySad] = 0.9
		answers[CategoryTired] = 0.5
		journal := NewScoreMap()
		journal[CategorySad] = 1.0
		return []SourceContribution{
			engine.Contribute(SourceAnswers, SignalOf(answers)),
			engine.Contribute(SourceJournal, SignalOf(journal)),
		}
	}

	first := engine.Fuse(build())
	second := engine.Fuse(build())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("fuse is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestFuseMonotonicInWinnerScore(t *testing.T) {
	engine := NewFusionEngine(nil)

	run := func(journalSad float64) float64 {
		answers := NewScoreMap()
		answers[CategorySad] = 0.8
		journal := NewScoreMap()
		journal[CategorySad] = journalSad
		result := engine.Fuse([]SourceContribution{
			engine.Contribute(SourceAnswers, SignalOf(answers)),
			engine.Contribute(SourceJournal, SignalOf(journal)),
		})
		return result.Scores[CategorySad]
	}

	prev := run(0.1)
	for _, v := range []float64{0.3, 0.5, 0.7, 0.9, 1.0} {
		cur := run(v)
		if cur < prev {
			t.Fatalf("fused score decreased from %f to %f when source score rose to %f", prev, cur, v)
		}
		prev = cur
	}
}

func TestFuseAllAbstainedFailsClosed(t *testing.T) {
	engine := NewFusionEngine(nil)

	result := engine.Fuse([]SourceContribution{
		engine.Contribute(SourceAnswers, SignalOf(NewScoreMap())),
		engine.Contribute(SourceJournal, SignalOf(NewScoreMap())),
		engine.Contribute(SourceFace, NoSignal()),
		engine.Contribute(SourceVoice, NoSignal()),
	})

	if result.Dominant != CategoryCalm {
		t.Fatalf("expected calm fallback, got %s", result.Dominant)
	}
	if result.Confidence != 0 {
		t.Fatalf("expected confidence 0, got %f", result.Confidence)
	}
	if len(result.Sources) != 0 {
		t.Fatalf("expected no contributing sources, got %v", result.Sources)
	}
	if result.Quality != QualityVeryLow {
		t.Fatalf("expected very_low quality, got %s", result.Quality)
	}
}

func TestFuseAllZeroSourceDoesNotContribute(t *testing.T) {
	engine := NewFusionEngine(nil)

	answers := NewScoreMap()
	answers[CategoryHappy] = 1.0

	result := engine.Fuse([]SourceContribution{
		engine.Contribute(SourceAnswers, SignalOf(answers)),
		engine.Contribute(SourceJournal, SignalOf(NewScoreMap())),
	})

	if len(result.Sources) != 1 || result.Sources[0] != SourceAnswers {
		t.Fatalf("all-zero journal must not count as contributor: %v", result.Sources)
	}
}

func TestFuseTieBreaksByRegistryOrder(t *testing.T) {
	engine := NewFusionEngine(nil)

	// frustrated y overwhelmed empatados exactos en una única fuente.
	journal := NewScoreMap()
	journal[CategoryFrustrated] = 1.0
	journal[CategoryOverwhelmed] = 1.0

	result := engine.Fuse([]SourceContribution{
		engine.Contribute(SourceJournal, SignalOf(journal)),
	})

	if result.Dominant != CategoryFrustrated {
		t.Fatalf("expected frustrated by registry order, got %s", result.Dominant)
	}
}

func TestFuseConfidenceBounds(t *testing.T) {
	engine := NewFusionEngine(nil)

	cases := []float64{0.05, 0.2, 0.5, 0.8, 1.0}
	for _, v := range cases {
		journal := NewScoreMap()
		journal[CategoryCalm] = v
		result := engine.Fuse([]SourceContribution{
			engine.Contribute(SourceJournal, SignalOf(journal)),
		})
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Fatalf("confidence out of bounds for input %f: %f", v, result.Confidence)
		}
	}
}

func TestFuseInjectedWeights(t *testing.T) {
	engine := NewFusionEngine(FusionWeights{SourceAnswers: 1.0})

	answers := NewScoreMap()
	answers[CategoryNeutral] = 0.5

	result := engine.Fuse([]SourceContribution{
		engine.Contribute(SourceAnswers, SignalOf(answers)),
	})
	if result.Scores[CategoryNeutral] != 0.5 {
		t.Fatalf("expected injected weight 1.0 applied, got %f", result.Scores[CategoryNeutral])
	}
}
