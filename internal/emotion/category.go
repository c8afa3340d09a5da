package emotion

import "fmt"

// Category es una de las 8 emociones canónicas del sistema.
// El set es cerrado: cualquier string externo se valida en la frontera
// (ver modality.go) y nunca entra como clave arbitraria.
type Category string

const (
	CategoryAnxious     Category = "anxious"
	CategorySad         Category = "sad"
	CategoryFrustrated  Category = "frustrated"
	CategoryOverwhelmed Category = "overwhelmed"
	CategoryCalm        Category = "calm"
	CategoryHappy       Category = "happy"
	CategoryNeutral     Category = "neutral"
	CategoryTired       Category = "tired"
)

// CategoryMeta es metadata de presentación, sin comportamiento.
type CategoryMeta struct {
	Label       string   `json:"label"`
	Glyph       string   `json:"glyph"`
	Description string   `json:"description"`
	Indicators  []string `json:"indicators"`
}

// categoryOrder define el orden canónico del registro.
// Ese orden es también la prioridad de desempate en la fusión.
var categoryOrder = []Category{
	CategoryAnxious,
	CategorySad,
	CategoryFrustrated,
	CategoryOverwhelmed,
	CategoryCalm,
	CategoryHappy,
	CategoryNeutral,
	CategoryTired,
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryAnxious: {
		Label:       "Anxious/Worried",
		Glyph:       "😰",
		Description: "Racing thoughts, tension, worry",
		Indicators:  []string{"racing_thoughts", "tension", "worry", "high_energy"},
	},
	CategorySad: {
		Label:       "Sad/Down",
		Glyph:       "😢",
		Description: "Low energy, withdrawn, tearful",
		Indicators:  []string{"low_energy", "withdrawn", "tearful", "crying"},
	},
	CategoryFrustrated: {
		Label:       "Frustrated/Angry",
		Glyph:       "😤",
		Description: "Tense, irritable, ready to explode",
		Indicators:  []string{"tense", "irritable", "screaming", "action_needed"},
	},
	CategoryOverwhelmed: {
		Label:       "Overwhelmed",
		Glyph:       "😫",
		Description: "Too much, stuck, can't cope",
		Indicators:  []string{"stuck_thoughts", "too_much", "cant_cope", "racing_thoughts"},
	},
	CategoryCalm: {
		Label:       "Calm/Peaceful",
		Glyph:       "😌",
		Description: "Relaxed, balanced, content",
		Indicators:  []string{"relaxed", "flowing_thoughts", "neutral", "balanced"},
	},
	CategoryHappy: {
		Label:       "Happy/Energized",
		Glyph:       "😊",
		Description: "High energy, positive, excited",
		Indicators:  []string{"high_energy", "laughing", "positive", "better_mood"},
	},
	CategoryNeutral: {
		Label:       "Neutral/Flat",
		Glyph:       "😐",
		Description: "Numb, disconnected, empty",
		Indicators:  []string{"numb", "nothing_feeling", "same_mood", "disconnected"},
	},
	CategoryTired: {
		Label:       "Tired/Drained",
		Glyph:       "😴",
		Description: "Exhausted, depleted, need rest",
		Indicators:  []string{"low_energy", "rest_needed", "exhausted", "drained"},
	},
}

// Categories devuelve las categorías en orden canónico.
// El slice devuelto es una copia: el orden del registro es inmutable.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsValidCategory indica si el id pertenece al set cerrado.
func IsValidCategory(c Category) bool {
	_, ok := categoryMeta[c]
	return ok
}

// ParseCategory valida un string externo contra el set cerrado.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if IsValidCategory(c) {
		return c, true
	}
	return "", false
}

// Metadata devuelve la metadata de una categoría del registro.
// Un id fuera del set es un error de programación, no una condición de
// runtime: se corta con panic en vez de devolver error recuperable.
func Metadata(c Category) CategoryMeta {
	meta, ok := categoryMeta[c]
	if !ok {
		panic(fmt.Sprintf("emotion: unknown category %q", c))
	}
	return meta
}
