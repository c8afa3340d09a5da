package emotion

// AnswerWeights mapea (pregunta, respuesta) a puntajes parciales por
// categoría. Es configuración estática de solo lectura: se inyecta al
// construir el scorer y no se muta por request, así las lecturas
// concurrentes son seguras sin locks.
type AnswerWeights map[string]map[string]map[Category]float64

// AnswerScorer puntúa respuestas estructuradas del check-in inicial.
type AnswerScorer struct {
	weights AnswerWeights
}

// NewAnswerScorer construye el scorer con una tabla de pesos inyectada.
func NewAnswerScorer(weights AnswerWeights) *AnswerScorer {
	if weights == nil {
		weights = DefaultAnswerWeights()
	}
	return &AnswerScorer{weights: weights}
}

// Score acumula los pesos parciales de cada par (pregunta, respuesta)
// presente en la tabla y normaliza el resultado a máximo 1.0.
// Preguntas o respuestas desconocidas se saltan en silencio: el set de
// preguntas evoluciona afuera y no debe tirar el motor (parsing leniente).
func (s *AnswerScorer) Score(responses map[string]string) ScoreMap {
	scores := NewScoreMap()
	for question, answer := range responses {
		answers, ok := s.weights[question]
		if !ok {
			continue
		}
		partial, ok := answers[answer]
		if !ok {
			continue
		}
		for category, weight := range partial {
			scores[category] += weight
		}
	}
	return scores.Normalized()
}

// DefaultAnswerWeights devuelve la tabla de referencia de pesos por
// respuesta. Los valores vienen calibrados del detector original.
func DefaultAnswerWeights() AnswerWeights {
	return AnswerWeights{
		"energy_level": {
			"high":     {CategoryHappy: 0.8, CategoryAnxious: 0.3, CategoryFrustrated: 0.2},
			"moderate": {CategoryCalm: 0.7, CategoryNeutral: 0.3},
			"low":      {CategorySad: 0.7, CategoryTired: 0.8, CategoryOverwhelmed: 0.3, CategoryNeutral: 0.2},
		},
		"thoughts": {
			"racing":  {CategoryAnxious: 0.8, CategoryOverwhelmed: 0.9, CategoryFrustrated: 0.3},
			"flowing": {CategoryCalm: 0.9, CategoryHappy: 0.5},
			"stuck":   {CategoryOverwhelmed: 0.9, CategorySad: 0.6, CategoryNeutral: 0.2},
		},
		"physical": {
			"tense":   {CategoryAnxious: 0.8, CategoryFrustrated: 0.7, CategoryOverwhelmed: 0.6},
			"neutral": {CategoryCalm: 0.6, CategoryNeutral: 0.5},
			"relaxed": {CategoryCalm: 0.9, CategoryHappy: 0.4},
		},
		"worry": {
			"nothing":    {CategoryCalm: 0.8, CategoryHappy: 0.5, CategoryNeutral: 0.2},
			"few_things": {CategoryAnxious: 0.5, CategoryOverwhelmed: 0.4},
			"a_lot":      {CategoryAnxious: 0.8, CategoryOverwhelmed: 0.9},
		},
		"feeling_like": {
			"crying":    {CategorySad: 0.9, CategoryOverwhelmed: 0.6},
			"screaming": {CategoryFrustrated: 0.9, CategoryOverwhelmed: 0.4, CategoryAnxious: 0.3},
			"laughing":  {CategoryHappy: 0.9, CategoryCalm: 0.5},
			"nothing":   {CategoryNeutral: 0.7, CategoryOverwhelmed: 0.4, CategoryCalm: 0.2, CategorySad: 0.2, CategoryTired: 0.2},
		},
		"mood_comparison": {
			"better": {CategoryHappy: 0.8, CategoryCalm: 0.4},
			"same":   {CategoryNeutral: 0.5, CategoryCalm: 0.4},
			"worse":  {CategorySad: 0.7, CategoryAnxious: 0.5, CategoryOverwhelmed: 0.4, CategoryTired: 0.3},
		},
		"need_most": {
			"company": {CategorySad: 0.6, CategoryAnxious: 0.3},
			"rest":    {CategoryTired: 0.9, CategoryOverwhelmed: 0.5, CategoryCalm: 0.3},
			"focus":   {CategoryAnxious: 0.5, CategoryOverwhelmed: 0.6},
			"action":  {CategoryFrustrated: 0.8, CategoryOverwhelmed: 0.3, CategoryAnxious: 0.3},
		},
	}
}
