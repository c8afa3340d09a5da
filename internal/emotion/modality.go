package emotion

// Modality identifica la fuente externa que produjo un score map.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityFace  Modality = "face"
	ModalityVoice Modality = "voice"
)

// ModalityMapping traduce el vocabulario nativo de una modalidad al set
// canónico. Puede ser varios-a-uno; un tag sin entrada se descarta.
type ModalityMapping map[string]Category

// ModalityNormalizer valida score maps externos contra el set cerrado.
type ModalityNormalizer struct {
	mapping ModalityMapping
}

// NewModalityNormalizer construye el normalizador con un mapping inyectado.
func NewModalityNormalizer(mapping ModalityMapping) *ModalityNormalizer {
	if mapping == nil {
		mapping = DefaultModalityMapping()
	}
	return &ModalityNormalizer{mapping: mapping}
}

// Normalize traduce y acumula los tags mapeados (suma cuando varios tags
// caen en la misma categoría) y escala a máximo 1.0. Un input vacío o
// ausente devuelve NoSignal: la fuente se abstuvo, no "calm".
// Tags desconocidos se ignoran en silencio (frontera leniente).
func (n *ModalityNormalizer) Normalize(raw map[string]float64) Signal {
	if len(raw) == 0 {
		return NoSignal()
	}

	scores := NewScoreMap()
	for tag, score := range raw {
		category, ok := n.mapping[tag]
		if !ok {
			continue
		}
		if score < 0 {
			continue
		}
		scores[category] += score
	}
	return SignalOf(scores.Normalized())
}

// DefaultModalityMapping devuelve la traducción de referencia para los
// analizadores de cara y voz.
func DefaultModalityMapping() ModalityMapping {
	return ModalityMapping{
		"stressed":    CategoryAnxious,
		"anxious":     CategoryAnxious,
		"frustrated":  CategoryFrustrated,
		"sad":         CategorySad,
		"overwhelmed": CategoryOverwhelmed,
		"positive":    CategoryHappy,
		"calm":        CategoryCalm,
		"energized":   CategoryHappy,
	}
}
