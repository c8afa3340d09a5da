package emotion

import "strings"

// KeywordTable asocia cada categoría con sus frases clave.
// Configuración estática de solo lectura, inyectada al construir el scorer.
type KeywordTable map[Category][]string

// JournalScorer puntúa texto libre de journaling por keywords.
type JournalScorer struct {
	keywords KeywordTable
}

// NewJournalScorer construye el scorer con una tabla de keywords inyectada.
func NewJournalScorer(keywords KeywordTable) *JournalScorer {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	return &JournalScorer{keywords: keywords}
}

// Score cuenta apariciones de keywords por categoría y normaliza.
// Regla de conteo: cada keyword suma como mucho 1 por respuesta escaneada,
// sin importar cuántas veces se repita dentro de esa respuesta. Respuestas
// en blanco no aportan nada.
func (s *JournalScorer) Score(responses map[string]string) ScoreMap {
	scores := NewScoreMap()
	if len(responses) == 0 {
		return scores
	}

	for _, text := range responses {
		if strings.TrimSpace(text) == "" {
			continue
		}
		lower := strings.ToLower(text)
		for category, keywords := range s.keywords {
			for _, keyword := range keywords {
				if strings.Contains(lower, keyword) {
					scores[category] += 1.0
				}
			}
		}
	}
	return scores.Normalized()
}

// DefaultKeywords devuelve las frases de referencia por categoría.
// Son datos de configuración, no lógica: la app es en inglés y las frases
// se comparan en minúsculas como substring.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		CategoryAnxious: {
			"worried", "anxious", "nervous", "stressed", "panic", "fear", "scared",
			"racing thoughts", "can't stop thinking", "overwhelming", "tense",
			"heart racing", "sweating", "shaking", "restless",
		},
		CategorySad: {
			"sad", "depressed", "down", "hopeless", "empty", "lonely", "crying",
			"tears", "grief", "loss", "disappointed", "hurt", "broken", "heavy",
			"can't get out of bed", "no energy", "worthless",
		},
		CategoryFrustrated: {
			"frustrated", "angry", "mad", "irritated", "annoyed", "furious",
			"rage", "explosive", "can't take it", "fed up", "sick of",
			"want to scream", "punch something", "so angry",
		},
		CategoryOverwhelmed: {
			"overwhelmed", "too much", "can't cope", "drowning", "stuck",
			"paralyzed", "frozen", "don't know where to start", "everything at once",
			"too many things", "can't handle", "breaking down",
		},
		CategoryCalm: {
			"calm", "peaceful", "relaxed", "centered", "balanced", "serene",
			"content", "at ease", "comfortable", "breathing easy", "quiet mind",
			"peaceful", "tranquil", "grounded",
		},
		CategoryHappy: {
			"happy", "joyful", "excited", "energized", "positive", "optimistic",
			"grateful", "blessed", "lucky", "amazing", "wonderful", "fantastic",
			"smiling", "laughing", "celebrating",
		},
		CategoryNeutral: {
			"okay", "fine", "neutral", "nothing", "empty", "numb", "flat",
			"don't feel anything", "meh", "whatever", "indifferent", "bored",
		},
		CategoryTired: {
			"tired", "exhausted", "drained", "fatigued", "worn out", "burned out",
			"no energy", "can't keep going", "need rest", "sleepy", "lethargic",
			"running on empty", "depleted",
		},
	}
}
