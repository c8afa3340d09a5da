package emotion

// EnsembleBaseWeights asigna a cada modalidad su confiabilidad base.
type EnsembleBaseWeights map[Modality]float64

// DefaultEnsembleWeights devuelve la confiabilidad de referencia:
// el texto suele ser lo más fiable; la voz mete ruido; la cara sufre
// con la iluminación.
func DefaultEnsembleWeights() EnsembleBaseWeights {
	return EnsembleBaseWeights{
		ModalityText:  1.0,
		ModalityVoice: 0.8,
		ModalityFace:  0.7,
	}
}

// ensembleFallbackWeight aplica a modalidades fuera de la tabla.
const ensembleFallbackWeight = 0.5

// ModalityReport es la salida completa de un pipeline de modalidad:
// score map ya en vocabulario canónico (claves ausentes = sin opinión en
// esa categoría) más su auto-reporte de calidad.
type ModalityReport struct {
	Modality Modality
	Signal   Signal
	// Confidence es la confianza interna que reporta el pipeline [0,1].
	Confidence float64
	// QualitySignal marca una señal de calidad propia de la modalidad:
	// lectura de estrés clara en voz, acuerdo multi-modelo en cara.
	QualitySignal bool
}

// EnsembleEngine fusiona N salidas de pipelines independientes en modo
// ponderado ajustado por calidad.
type EnsembleEngine struct {
	weights   EnsembleBaseWeights
	estimator *ConfidenceEstimator
}

// NewEnsembleEngine construye el motor con pesos base inyectados.
func NewEnsembleEngine(weights EnsembleBaseWeights) *EnsembleEngine {
	if weights == nil {
		weights = DefaultEnsembleWeights()
	}
	return &EnsembleEngine{
		weights:   weights,
		estimator: NewConfidenceEstimator(),
	}
}

// effectiveWeight calcula peso base + boost por calidad, tope 1.0.
// Boost: +0.1 si el pipeline reporta confianza alta, +0.1 si trae señal
// de calidad propia (hasta +0.2 en total).
func (e *EnsembleEngine) effectiveWeight(report ModalityReport) float64 {
	weight, ok := e.weights[report.Modality]
	if !ok {
		weight = ensembleFallbackWeight
	}
	if report.Confidence > 0.7 {
		weight += 0.1
	}
	if report.QualitySignal {
		weight += 0.1
	}
	if weight > 1.0 {
		return 1.0
	}
	return weight
}

// Fuse combina los reportes con promedio ponderado por categoría:
// fused[c] = Σ score×peso / Σ peso, sumando solo sobre las fuentes que
// traen una entrada para c. A diferencia del modo simple, acá sí se
// renormaliza por categoría: una categoría con una sola fuente queda
// puntuada puramente por esa fuente, pesen lo que pesen las demás.
//
// Reportes ausentes o vacíos se descartan; si no queda ninguno válido,
// cierra en calm con confianza 0, igual que el modo simple.
type weightedReport struct {
	modality Modality
	scores   ScoreMap
	weight   float64
}

func (e *EnsembleEngine) Fuse(reports []ModalityReport) FusionResult {
	var valid []weightedReport
	for _, report := range reports {
		if !report.Signal.Present() {
			continue
		}
		scores := report.Signal.Scores()
		if len(scores) == 0 {
			continue
		}
		valid = append(valid, weightedReport{
			modality: report.Modality,
			scores:   scores,
			weight:   e.effectiveWeight(report),
		})
	}

	if len(valid) == 0 {
		return FusionResult{
			Dominant:   CategoryCalm,
			Confidence: 0,
			Scores:     make(ScoreMap),
			Sources:    nil,
			Quality:    QualityVeryLow,
		}
	}

	fused := make(ScoreMap)
	for _, c := range categoryOrder {
		weightedSum := 0.0
		totalWeight := 0.0
		seen := false
		for _, v := range valid {
			score, ok := v.scores[c]
			if !ok {
				continue
			}
			seen = true
			weightedSum += score * v.weight
			totalWeight += v.weight
		}
		if !seen {
			continue
		}
		if totalWeight > 0 {
			fused[c] = weightedSum / totalWeight
		} else {
			fused[c] = 0
		}
	}

	dominant, _ := fused.Dominant()
	confidence := e.agreementConfidence(valid, dominant)

	strong := 0
	for _, v := range valid {
		if v.weight > 0.8 {
			strong++
		}
	}

	sources := make([]SourceID, 0, len(valid))
	for _, v := range valid {
		sources = append(sources, SourceID(v.modality))
	}

	return FusionResult{
		Dominant:   dominant,
		Confidence: confidence,
		Scores:     fused,
		Sources:    sources,
		Quality:    assessFusionQuality(len(valid), strong, confidence),
	}

}

// agreementConfidence mide cuántas modalidades acompañan al ganador:
// fracción de fuentes con puntaje > 0.3 en la categoría dominante, más
// +0.1 por cada fuente de peso alto que lo respalde con puntaje > 0.5.
func (e *EnsembleEngine) agreementConfidence(valid []weightedReport, dominant Category) float64 {
	if len(valid) == 0 {
		return 0
	}

	agreement := 0
	boost := 0.0
	for _, v := range valid {
		score, ok := v.scores[dominant]
		if !ok {
			continue
		}
		if score > 0.3 {
			agreement++
		}
		if score > 0.5 && v.weight > 0.8 {
			boost += 0.1
		}
	}

	confidence := float64(agreement)/float64(len(valid)) + boost
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
