package emotion

// DetectionInput son los inputs crudos de un check-in. Las modalidades son
// opcionales: un mapa vacío o nil significa que esa fuente se abstuvo.
type DetectionInput struct {
	Answers map[string]string  `json:"answers"`
	Journal map[string]string  `json:"journal"`
	Face    map[string]float64 `json:"face,omitempty"`
	Voice   map[string]float64 `json:"voice,omitempty"`
}

// SourceBreakdown expone el score map normalizado que aportó cada fuente,
// para debugging y para lógica downstream que quiera grano fino.
// Face/Voice quedan en nil si la modalidad se abstuvo.
type SourceBreakdown struct {
	Answers ScoreMap `json:"answers"`
	Journal ScoreMap `json:"journal"`
	Face    ScoreMap `json:"face,omitempty"`
	Voice   ScoreMap `json:"voice,omitempty"`
}

// DetectionResult es la decisión completa que se devuelve al caller.
// Inmutable; persistirla (o no) es problema de quien llama.
type DetectionResult struct {
	Category    Category        `json:"category"`
	Label       string          `json:"label"`
	Glyph       string          `json:"glyph"`
	Description string          `json:"description"`
	Confidence  float64         `json:"confidence"`
	Indicators  []string        `json:"indicators"`
	Scores      ScoreMap        `json:"scores"`
	Sources     []SourceID      `json:"sources"`
	Quality     FusionQuality   `json:"quality"`
	Breakdown   SourceBreakdown `json:"breakdown"`
}

// Detector encadena los scorers, la fusión, la confianza y los indicadores
// en una sola pasada. Todo es función pura sobre tablas de solo lectura:
// cada request puede correr en su propia goroutine sin coordinación.
type Detector struct {
	answers    *AnswerScorer
	journal    *JournalScorer
	modalities *ModalityNormalizer
	engine     *FusionEngine
	indicators *IndicatorExtractor
}

// NewDetector construye el detector con dependencias explícitas.
func NewDetector(
	answers *AnswerScorer,
	journal *JournalScorer,
	modalities *ModalityNormalizer,
	engine *FusionEngine,
	indicators *IndicatorExtractor,
) *Detector {
	return &Detector{
		answers:    answers,
		journal:    journal,
		modalities: modalities,
		engine:     engine,
		indicators: indicators,
	}
}

// NewDefaultDetector construye el detector con las tablas de referencia.
func NewDefaultDetector() *Detector {
	return NewDetector(
		NewAnswerScorer(nil),
		NewJournalScorer(nil),
		NewModalityNormalizer(nil),
		NewFusionEngine(nil),
		NewIndicatorExtractor(),
	)
}

// Detect corre el pipeline completo: cada fuente produce su score map de
// manera independiente, la fusión los combina, y del mapa fusionado salen
// confianza e indicadores. Nunca falla para un request bien formado:
// vocabulario desconocido se ignora y la ausencia total de señal cae en
// calm con confianza 0.
func (d *Detector) Detect(input DetectionInput) DetectionResult {
	answerScores := d.answers.Score(input.Answers)
	journalScores := d.journal.Score(input.Journal)
	faceSignal := d.modalities.Normalize(input.Face)
	voiceSignal := d.modalities.Normalize(input.Voice)

	fusion := d.engine.Fuse([]SourceContribution{
		d.engine.Contribute(SourceAnswers, SignalOf(answerScores)),
		d.engine.Contribute(SourceJournal, SignalOf(journalScores)),
		d.engine.Contribute(SourceFace, faceSignal),
		d.engine.Contribute(SourceVoice, voiceSignal),
	})

	var indicators []string
	if fusion.Confidence > 0 || !fusion.Scores.IsZero() {
		indicators = d.indicators.Extract(EvidenceInput{
			Answers:   input.Answers,
			Journal:   input.Journal,
			FacePick:  modalityPick(faceSignal),
			VoicePick: modalityPick(voiceSignal),
		}, fusion.Dominant)
	} else {
		indicators = []string{}
	}

	meta := Metadata(fusion.Dominant)
	return DetectionResult{
		Category:    fusion.Dominant,
		Label:       meta.Label,
		Glyph:       meta.Glyph,
		Description: meta.Description,
		Confidence:  fusion.Confidence,
		Indicators:  indicators,
		Scores:      fusion.Scores,
		Sources:     fusion.Sources,
		Quality:     fusion.Quality,
		Breakdown: SourceBreakdown{
			Answers: answerScores,
			Journal: journalScores,
			Face:    faceSignal.Scores(),
			Voice:   voiceSignal.Scores(),
		},
	}
}

// modalityPick devuelve la categoría que la modalidad eligió por su cuenta,
// o vacía si se abstuvo o no aportó nada positivo.
func modalityPick(sig Signal) Category {
	if !sig.Present() {
		return ""
	}
	scores := sig.Scores()
	if scores.IsZero() {
		return ""
	}
	dominant, _ := scores.Dominant()
	return dominant
}
