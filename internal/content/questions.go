package content

import (
	"moodlens/internal/emotion"
)

// Option es una alternativa de respuesta para una pregunta inicial.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
}

// InitialQuestion es una pregunta de categorización rápida (opción múltiple)
// que se presenta antes del journaling dirigido.
type InitialQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
	Category string   `json:"category"`
}

// JournalPrompt es una consigna de escritura dirigida según la categoría
// emocional detectada en el triage inicial.
type JournalPrompt struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
	Category    string `json:"category"`
}

// VoicePrompt es una frase fija que el usuario lee en voz alta para el
// análisis de tono.
type VoicePrompt struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Instruction string `json:"instruction"`
	Focus       string `json:"focus"`
}

// QuestionCatalog agrupa el material estático del check-in guiado:
// preguntas iniciales, consignas de journaling por categoría y frases
// de voz. Es inmutable después de construido.
type QuestionCatalog struct {
	initial []InitialQuestion
	journal map[emotion.Category][]JournalPrompt
	voice   []VoicePrompt
}

// NewQuestionCatalog construye el catálogo con el contenido de referencia.
func NewQuestionCatalog() *QuestionCatalog {
	return &QuestionCatalog{
		initial: defaultInitialQuestions(),
		journal: defaultJournalPrompts(),
		voice:   defaultVoicePrompts(),
	}
}

// InitialQuestions devuelve las preguntas de categorización en orden fijo.
func (c *QuestionCatalog) InitialQuestions() []InitialQuestion {
	out := make([]InitialQuestion, len(c.initial))
	copy(out, c.initial)
	return out
}

// JournalPrompts devuelve las consignas de escritura para una categoría.
// Categorías sin consignas definidas devuelven lista vacía.
func (c *QuestionCatalog) JournalPrompts(cat emotion.Category) []JournalPrompt {
	prompts, ok := c.journal[cat]
	if !ok {
		return nil
	}
	out := make([]JournalPrompt, len(prompts))
	copy(out, prompts)
	return out
}

// VoicePrompts devuelve las frases para análisis de voz.
func (c *QuestionCatalog) VoicePrompts() []VoicePrompt {
	out := make([]VoicePrompt, len(c.voice))
	copy(out, c.voice)
	return out
}

// TriageCategory elige la categoría preliminar a partir de las respuestas
// iniciales, con un puntaje entero simple. Se usa solo para seleccionar las
// consignas de journaling; la detección definitiva la hace el motor de
// fusión. Empates se resuelven por orden del registro de categorías.
func (c *QuestionCatalog) TriageCategory(answers map[string]string) emotion.Category {
	scores := map[emotion.Category]int{}

	switch answers["energy_level"] {
	case "high":
		scores[emotion.CategoryHappy] += 2
		scores[emotion.CategoryAnxious]++
	case "low":
		scores[emotion.CategorySad] += 2
		scores[emotion.CategoryTired] += 2
		scores[emotion.CategoryNeutral]++
	}

	switch answers["thoughts"] {
	case "racing":
		scores[emotion.CategoryAnxious] += 2
		scores[emotion.CategoryOverwhelmed]++
	case "stuck":
		scores[emotion.CategoryOverwhelmed] += 2
		scores[emotion.CategorySad]++
	}

	switch answers["physical"] {
	case "tense":
		scores[emotion.CategoryAnxious] += 2
		scores[emotion.CategoryFrustrated]++
	case "relaxed":
		scores[emotion.CategoryCalm] += 2
	}

	switch answers["feeling_like"] {
	case "crying":
		scores[emotion.CategorySad] += 3
		scores[emotion.CategoryOverwhelmed]++
	case "screaming":
		scores[emotion.CategoryFrustrated] += 3
		scores[emotion.CategoryAnxious]++
	case "laughing":
		scores[emotion.CategoryHappy] += 3
	case "nothing":
		scores[emotion.CategoryNeutral] += 2
		scores[emotion.CategoryTired]++
	}

	best := emotion.CategoryNeutral
	bestScore := 0
	for _, cat := range emotion.Categories() {
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}
	return best
}

func defaultInitialQuestions() []InitialQuestion {
	return []InitialQuestion{
		{
			ID:       "energy_level",
			Question: "Right now, my energy level feels:",
			Options: []Option{
				{Value: "high", Text: "⚡ High", Emoji: "⚡"},
				{Value: "moderate", Text: "😌 Moderate", Emoji: "😌"},
				{Value: "low", Text: "😴 Low", Emoji: "😴"},
			},
			Category: "physical",
		},
		{
			ID:       "thoughts",
			Question: "My thoughts are:",
			Options: []Option{
				{Value: "racing", Text: "🌪️ Racing", Emoji: "🌪️"},
				{Value: "flowing", Text: "🌊 Flowing", Emoji: "🌊"},
				{Value: "stuck", Text: "🧊 Stuck", Emoji: "🧊"},
			},
			Category: "mental",
		},
		{
			ID:       "physical",
			Question: "Physically, I feel:",
			Options: []Option{
				{Value: "tense", Text: "😰 Tense", Emoji: "😰"},
				{Value: "neutral", Text: "😐 Neutral", Emoji: "😐"},
				{Value: "relaxed", Text: "😌 Relaxed", Emoji: "😌"},
			},
			Category: "physical",
		},
		{
			ID:       "feeling_like",
			Question: "I feel most like:",
			Options: []Option{
				{Value: "crying", Text: "😢 Crying", Emoji: "😢"},
				{Value: "screaming", Text: "😤 Screaming", Emoji: "😤"},
				{Value: "laughing", Text: "😊 Laughing", Emoji: "😊"},
				{Value: "nothing", Text: "😶 Nothing", Emoji: "😶"},
			},
			Category: "emotional",
		},
	}
}

func defaultJournalPrompts() map[emotion.Category][]JournalPrompt {
	return map[emotion.Category][]JournalPrompt{
		emotion.CategoryAnxious: {
			{ID: "anxious_1", Question: "What specific thoughts are racing through your mind right now?", Placeholder: "Type whatever comes to mind...", Category: "thoughts"},
			{ID: "anxious_2", Question: "What are you most worried about today?", Placeholder: "Describe what's making you feel worried...", Category: "worries"},
			{ID: "anxious_3", Question: "Where do you feel tension in your body?", Placeholder: "Describe any physical sensations...", Category: "physical"},
			{ID: "anxious_4", Question: "What would help you feel more calm right now?", Placeholder: "What do you think you need?", Category: "needs"},
		},
		emotion.CategorySad: {
			{ID: "sad_1", Question: "What's making you feel sad or down today?", Placeholder: "Describe what's contributing to these feelings...", Category: "triggers"},
			{ID: "sad_2", Question: "How is this sadness showing up in your body?", Placeholder: "Describe any physical sensations...", Category: "physical"},
			{ID: "sad_3", Question: "What do you wish someone understood about how you're feeling?", Placeholder: "What would you want others to know?", Category: "expression"},
			{ID: "sad_4", Question: "What usually helps you feel better when you're sad?", Placeholder: "Think of things that have helped before...", Category: "coping"},
		},
		emotion.CategoryFrustrated: {
			{ID: "frustrated_1", Question: "What's frustrating you most right now?", Placeholder: "Describe what's making you feel frustrated...", Category: "triggers"},
			{ID: "frustrated_2", Question: "How is this frustration showing up in your body?", Placeholder: "Describe any physical sensations...", Category: "physical"},
			{ID: "frustrated_3", Question: "What do you wish you could do about this situation?", Placeholder: "What action would you like to take?", Category: "action"},
			{ID: "frustrated_4", Question: "What's preventing you from feeling better about this?", Placeholder: "What obstacles do you see?", Category: "barriers"},
		},
		emotion.CategoryOverwhelmed: {
			{ID: "overwhelmed_1", Question: "What feels like too much right now?", Placeholder: "Describe what's overwhelming you...", Category: "triggers"},
			{ID: "overwhelmed_2", Question: "What thoughts keep getting stuck in your head?", Placeholder: "Describe any repetitive or stuck thoughts...", Category: "thoughts"},
			{ID: "overwhelmed_3", Question: "What would it look like if things felt manageable?", Placeholder: "Describe what manageable would feel like...", Category: "vision"},
			{ID: "overwhelmed_4", Question: "What's one small thing you could do to feel less overwhelmed?", Placeholder: "Think of something small and doable...", Category: "action"},
		},
		emotion.CategoryCalm: {
			{ID: "calm_1", Question: "What's contributing to this sense of calm?", Placeholder: "Describe what's helping you feel peaceful...", Category: "sources"},
			{ID: "calm_2", Question: "How does this calm feeling show up in your body?", Placeholder: "Describe the physical sensations of calm...", Category: "physical"},
			{ID: "calm_3", Question: "What would you like to do with this peaceful energy?", Placeholder: "How would you like to use this calm feeling?", Category: "intention"},
			{ID: "calm_4", Question: "What helps you maintain this sense of balance?", Placeholder: "What practices or habits support this?", Category: "maintenance"},
		},
		emotion.CategoryHappy: {
			{ID: "happy_1", Question: "What's making you feel happy or energized today?", Placeholder: "Describe what's bringing you joy...", Category: "sources"},
			{ID: "happy_2", Question: "How is this happiness showing up in your body?", Placeholder: "Describe the physical sensations of joy...", Category: "physical"},
			{ID: "happy_3", Question: "What would you like to do with this positive energy?", Placeholder: "How would you like to channel this happiness?", Category: "intention"},
			{ID: "happy_4", Question: "Who would you like to share this good feeling with?", Placeholder: "Think of people who would appreciate this...", Category: "connection"},
		},
		emotion.CategoryNeutral: {
			{ID: "neutral_1", Question: "What does this neutral feeling feel like to you?", Placeholder: "Describe what neutral means for you right now...", Category: "experience"},
			{ID: "neutral_2", Question: "What's happening around you that might be contributing to this?", Placeholder: "Describe your current environment or situation...", Category: "context"},
			{ID: "neutral_3", Question: "What would you like to feel instead?", Placeholder: "What emotion would you prefer right now?", Category: "preference"},
			{ID: "neutral_4", Question: "What might help you feel more connected or engaged?", Placeholder: "What could help you feel more alive?", Category: "engagement"},
		},
		emotion.CategoryTired: {
			{ID: "tired_1", Question: "What's contributing to this feeling of exhaustion?", Placeholder: "Describe what's draining your energy...", Category: "sources"},
			{ID: "tired_2", Question: "How does this tiredness show up in your body?", Placeholder: "Describe the physical sensations of fatigue...", Category: "physical"},
			{ID: "tired_3", Question: "What would true rest look like for you right now?", Placeholder: "Describe what rest would feel like...", Category: "needs"},
			{ID: "tired_4", Question: "What's preventing you from getting the rest you need?", Placeholder: "What obstacles are in the way?", Category: "barriers"},
		},
	}
}

func defaultVoicePrompts() []VoicePrompt {
	return []VoicePrompt{
		{
			ID:          "voice_1",
			Text:        "The quick brown fox jumps over the lazy dog.",
			Instruction: "Please read this sentence naturally, as you would normally speak.",
			Focus:       "natural_speech_patterns",
		},
		{
			ID:          "voice_2",
			Text:        "I am feeling okay today.",
			Instruction: "Say this sentence as if you're telling a friend how you feel.",
			Focus:       "emotional_expression",
		},
		{
			ID:          "voice_3",
			Text:        "Everything will be alright.",
			Instruction: "Say this sentence as if you're trying to reassure yourself.",
			Focus:       "self_reassurance",
		},
	}
}
