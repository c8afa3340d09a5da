package emotion

// SourceID identifica cada fuente que aporta evidencia a la fusión.
type SourceID string

const (
	SourceAnswers SourceID = "answers"
	SourceJournal SourceID = "journal"
	SourceFace    SourceID = "face"
	SourceVoice   SourceID = "voice"
)

// FusionWeights asigna a cada fuente su peso base de confiabilidad [0,1].
// Tabla estática de solo lectura, compartida entre requests.
type FusionWeights map[SourceID]float64

// DefaultFusionWeights devuelve los pesos de referencia.
// El journaling pesa más porque trae la señal más detallada.
func DefaultFusionWeights() FusionWeights {
	return FusionWeights{
		SourceAnswers: 0.3,
		SourceJournal: 0.4,
		SourceFace:    0.2,
		SourceVoice:   0.1,
	}
}

// SourceContribution es el aporte de una fuente a una llamada de fusión:
// id, señal y peso de confiabilidad. Vive solo dentro de esa llamada.
type SourceContribution struct {
	Source SourceID
	Signal Signal
	Weight float64
}

// FusionQuality etiqueta qué tan confiable fue la fusión en conjunto.
// Es metadata informativa: no participa en ninguna decisión posterior.
type FusionQuality string

const (
	QualityHigh    FusionQuality = "high"
	QualityMedium  FusionQuality = "medium"
	QualityLow     FusionQuality = "low"
	QualityVeryLow FusionQuality = "very_low"
)

// FusionResult es la decisión final de una llamada de fusión. Inmutable;
// la persistencia queda a cargo del caller.
type FusionResult struct {
	Dominant   Category      `json:"dominant"`
	Confidence float64       `json:"confidence"`
	Scores     ScoreMap      `json:"scores"`
	Sources    []SourceID    `json:"sources"`
	Quality    FusionQuality `json:"quality"`
}

// FusionEngine combina los score maps de las fuentes siempre presentes
// (respuestas, journaling, modalidades opcionales) en modo ponderado simple.
type FusionEngine struct {
	weights   FusionWeights
	estimator *ConfidenceEstimator
}

// NewFusionEngine construye el motor con una tabla de pesos inyectada.
func NewFusionEngine(weights FusionWeights) *FusionEngine {
	if weights == nil {
		weights = DefaultFusionWeights()
	}
	return &FusionEngine{
		weights:   weights,
		estimator: NewConfidenceEstimator(),
	}
}

// Contribute arma el aporte de una fuente con su peso base de la tabla.
func (e *FusionEngine) Contribute(source SourceID, sig Signal) SourceContribution {
	return SourceContribution{
		Source: source,
		Signal: sig,
		Weight: e.weights[source],
	}
}

// Fuse combina los aportes en modo ponderado simple: para cada categoría,
// suma puntaje × peso de cada fuente presente. Los pesos de fuentes ausentes
// se omiten sin redistribuir: con evidencia parcial los puntajes fusionados
// quedan por debajo de 1.0 a propósito, porque menos evidencia debe verse
// menos certera.
//
// Si ninguna fuente aportó señal (todo abstención o todo-cero), el motor
// cierra en el resultado por defecto: calm con confianza 0. Ausencia de
// señal es un resultado esperado en este dominio, no una excepción.
func (e *FusionEngine) Fuse(contributions []SourceContribution) FusionResult {
	fused := NewScoreMap()
	var used []SourceID

	for _, contrib := range contributions {
		if !contrib.Signal.Present() {
			continue
		}
		scores := contrib.Signal.Scores()
		if scores.IsZero() {
			// Todo-cero es "sin señal": la fuente no contribuye.
			continue
		}
		used = append(used, contrib.Source)
		for category, score := range scores {
			fused[category] += score * contrib.Weight
		}
	}

	if fused.IsZero() {
		return FusionResult{
			Dominant:   CategoryCalm,
			Confidence: 0,
			Scores:     fused,
			Sources:    nil,
			Quality:    QualityVeryLow,
		}
	}

	dominant, dominantScore := fused.Dominant()
	confidence := e.estimator.Estimate(fused, dominant, dominantScore)

	strong := 0
	for _, contrib := range contributions {
		if contrib.Signal.Present() && !contrib.Signal.Scores().IsZero() && contrib.Weight >= 0.3 {
			strong++
		}
	}

	return FusionResult{
		Dominant:   dominant,
		Confidence: confidence,
		Scores:     fused,
		Sources:    used,
		Quality:    assessFusionQuality(len(used), strong, confidence),
	}
}

// assessFusionQuality deriva la etiqueta cualitativa de la fusión según
// cantidad de fuentes, confianza y cuántas fuentes fuertes participaron.
func assessFusionQuality(sourceCount, strongSources int, confidence float64) FusionQuality {
	score := 0

	switch {
	case sourceCount >= 3:
		score += 2
	case sourceCount >= 2:
		score++
	}

	switch {
	case confidence > 0.8:
		score += 2
	case confidence > 0.6:
		score++
	}

	if strongSources >= 2 {
		score++
	}

	switch {
	case score >= 4:
		return QualityHigh
	case score >= 2:
		return QualityMedium
	case score >= 1:
		return QualityLow
	default:
		return QualityVeryLow
	}
}
