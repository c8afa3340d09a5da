package emotion

// ConfidenceEstimator convierte el puntaje fusionado del ganador y su margen
// sobre el segundo en una confianza acotada a [0,1].
//
// La forma escalonada es intencional: separar claramente al segundo vale
// bastante más que un puntaje absoluto alto con un segundo pegado.
type ConfidenceEstimator struct{}

// NewConfidenceEstimator construye el estimador.
func NewConfidenceEstimator() *ConfidenceEstimator {
	return &ConfidenceEstimator{}
}

// Estimate calcula la confianza del ganador:
// base = puntaje dominante; boost por margen en tres tramos; ajuste por
// fuerza de señal (penalización débil o bono fuerte, excluyentes); clamp.
func (ConfidenceEstimator) Estimate(scores ScoreMap, dominant Category, dominantScore float64) float64 {
	confidence := dominantScore

	margin := dominantScore - scores.RunnerUpScore(dominant)
	switch {
	case margin > 0.3:
		confidence += 0.35
	case margin > 0.15:
		confidence += margin * 0.5
	default:
		confidence += margin * 0.2
	}

	if dominantScore < 0.3 {
		confidence *= 0.7
	} else if dominantScore > 0.6 {
		confidence += 0.15
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
