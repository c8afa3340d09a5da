package emotion

// ScoreMap asocia categorías con un puntaje no negativo.
// Una clave ausente equivale a 0. Nunca se muta una vez producido:
// cada etapa construye un mapa nuevo.
type ScoreMap map[Category]float64

// NewScoreMap devuelve un mapa con las 8 categorías en 0.
func NewScoreMap() ScoreMap {
	m := make(ScoreMap, len(categoryOrder))
	for _, c := range categoryOrder {
		m[c] = 0
	}
	return m
}

// Clone copia el mapa.
func (m ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(m))
	for c, v := range m {
		out[c] = v
	}
	return out
}

// Max devuelve el puntaje máximo (0 para un mapa vacío).
func (m ScoreMap) Max() float64 {
	max := 0.0
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return max
}

// IsZero indica si no hay ninguna entrada positiva ("sin señal").
func (m ScoreMap) IsZero() bool {
	return m.Max() <= 0
}

// Normalized escala el mapa para que su máximo sea exactamente 1.0.
// Un mapa todo-cero queda igual: "sin señal" no se normaliza nunca
// (identidad, jamás división por cero). Idempotente bajo renormalización.
func (m ScoreMap) Normalized() ScoreMap {
	max := m.Max()
	out := m.Clone()
	if max <= 0 {
		return out
	}
	for c, v := range out {
		out[c] = v / max
	}
	return out
}

// Dominant devuelve la categoría con mayor puntaje.
// Empates exactos se resuelven por orden del registro: recorremos en orden
// canónico y solo reemplazamos con un puntaje estrictamente mayor.
func (m ScoreMap) Dominant() (Category, float64) {
	best := categoryOrder[0]
	bestScore := m[best]
	for _, c := range categoryOrder[1:] {
		if m[c] > bestScore {
			best = c
			bestScore = m[c]
		}
	}
	return best, bestScore
}

// RunnerUpScore devuelve el segundo mejor puntaje (0 si solo hay uno positivo).
func (m ScoreMap) RunnerUpScore(dominant Category) float64 {
	second := 0.0
	for c, v := range m {
		if c == dominant {
			continue
		}
		if v > second {
			second = v
		}
	}
	return second
}

// Signal modela la señal de una fuente de manera explícita:
// Present(ScoreMap) o Absent. Evita la ambigüedad entre "computado
// todo-cero" y "no computado" que daría chequear emptiness.
type Signal struct {
	scores  ScoreMap
	present bool
}

// SignalOf envuelve un ScoreMap como señal presente.
func SignalOf(m ScoreMap) Signal {
	return Signal{scores: m, present: true}
}

// NoSignal representa una fuente que se abstuvo.
func NoSignal() Signal {
	return Signal{}
}

// Present indica si la fuente aportó señal.
func (s Signal) Present() bool {
	return s.present
}

// Scores devuelve el mapa de la señal, o nil si está ausente.
func (s Signal) Scores() ScoreMap {
	if !s.present {
		return nil
	}
	return s.scores
}
