package emotion

import (
	"sort"
	"strings"
)

// maxIndicators limita la cantidad de justificaciones mostradas al usuario.
const maxIndicators = 3

// answerIndicator es una regla: si la respuesta coincide y el ganador está
// entre las categorías, se agrega el texto como evidencia.
type answerIndicator struct {
	question   string
	answer     string
	categories []Category
	text       string
}

// journalWords son las familias de palabras que habilitan el indicador
// derivado del journaling, por categoría ganadora.
var journalWords = map[Category][]string{
	CategoryAnxious:     {"worried", "nervous", "stressed", "panic"},
	CategorySad:         {"sad", "down", "hopeless", "empty"},
	CategoryFrustrated:  {"angry", "mad", "frustrated", "irritated"},
	CategoryOverwhelmed: {"overwhelmed", "too much", "can't cope"},
}

var journalIndicatorText = map[Category]string{
	CategoryAnxious:     "Your writing shows signs of worry",
	CategorySad:         "Your writing reflects sadness",
	CategoryFrustrated:  "Your writing shows frustration",
	CategoryOverwhelmed: "Your writing indicates feeling overwhelmed",
}

// IndicatorExtractor genera justificaciones cortas y legibles para la
// categoría ganadora a partir de los inputs crudos.
type IndicatorExtractor struct {
	answerRules []answerIndicator
}

// NewIndicatorExtractor construye el extractor con las reglas de referencia.
// El orden de evaluación es fijo: respuestas estructuradas primero, después
// a lo sumo un indicador de journaling, después las modalidades. Ese orden
// y el tope de 3 son decisiones de UX y se respetan tal cual.
func NewIndicatorExtractor() *IndicatorExtractor {
	return &IndicatorExtractor{
		answerRules: []answerIndicator{
			{"thoughts", "racing", []Category{CategoryAnxious, CategoryOverwhelmed}, "Your thoughts are racing"},
			{"energy_level", "low", []Category{CategorySad, CategoryTired}, "Your energy feels low"},
			{"physical", "tense", []Category{CategoryAnxious, CategoryFrustrated}, "You feel physically tense"},
			{"feeling_like", "crying", []Category{CategorySad}, "You feel like crying"},
			{"feeling_like", "screaming", []Category{CategoryFrustrated}, "You feel like screaming"},
			{"feeling_like", "laughing", []Category{CategoryHappy}, "You feel like laughing"},
		},
	}
}

// EvidenceInput agrupa los inputs crudos que alimentan la extracción.
// FacePick y VoicePick son la categoría que cada modalidad eligió por su
// cuenta (vacías si la modalidad se abstuvo).
type EvidenceInput struct {
	Answers   map[string]string
	Journal   map[string]string
	FacePick  Category
	VoicePick Category
}

// Extract devuelve hasta 3 indicadores consistentes con la categoría
// ganadora, en orden de prioridad fijo.
func (x *IndicatorExtractor) Extract(input EvidenceInput, winner Category) []string {
	indicators := []string{}

	for _, rule := range x.answerRules {
		if input.Answers[rule.question] != rule.answer {
			continue
		}
		for _, c := range rule.categories {
			if c == winner {
				indicators = append(indicators, rule.text)
				break
			}
		}
	}

	if text, ok := x.journalIndicator(input.Journal, winner); ok {
		indicators = append(indicators, text)
	}

	if input.FacePick == winner && winner != "" {
		indicators = append(indicators, "Your facial expression shows this emotion")
	}
	if input.VoicePick == winner && winner != "" {
		indicators = append(indicators, "Your voice tone indicates this emotion")
	}

	if len(indicators) > maxIndicators {
		indicators = indicators[:maxIndicators]
	}
	return indicators
}

// journalIndicator busca la primera respuesta sustancial (>10 caracteres)
// y chequea la familia de palabras del ganador solo en esa. Se usa a lo
// sumo un indicador de journaling. Las respuestas se recorren por id
// ordenado para que el resultado sea determinista.
func (x *IndicatorExtractor) journalIndicator(journal map[string]string, winner Category) (string, bool) {
	words, hasWords := journalWords[winner]
	if len(journal) == 0 {
		return "", false
	}

	ids := make([]string, 0, len(journal))
	for id := range journal {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		text := journal[id]
		if len(strings.TrimSpace(text)) <= 10 {
			continue
		}
		if hasWords {
			lower := strings.ToLower(text)
			for _, w := range words {
				if strings.Contains(lower, w) {
					return journalIndicatorText[winner], true
				}
			}
		}
		// Solo la primera respuesta sustancial cuenta para este indicador.
		return "", false
	}
	return "", false
}
