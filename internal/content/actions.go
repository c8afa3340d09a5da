package content

import (
	"moodlens/internal/emotion"
)

// Action es una sugerencia concreta asociada a una emoción detectada.
type Action struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
}

// ActionPlan separa las sugerencias en inmediatas (minutos) y de corto
// plazo (el resto del día).
type ActionPlan struct {
	Immediate []Action `json:"immediate"`
	ShortTerm []Action `json:"short_term"`
}

// ActionTypeInfo describe un tipo de acción para la capa de presentación.
type ActionTypeInfo struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// EmergencyResource es un recurso de ayuda en crisis. URL puede ser vacía.
type EmergencyResource struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// Recommender entrega planes de acción por categoría emocional, metadatos
// de tipos de acción, recursos de emergencia y guiones de audio guiado.
// Todo el contenido es estático.
type Recommender struct {
	plans map[emotion.Category]ActionPlan
	types map[string]ActionTypeInfo
}

// NewRecommender construye el recomendador con las tablas de referencia.
func NewRecommender() *Recommender {
	return &Recommender{
		plans: defaultActionPlans(),
		types: defaultActionTypes(),
	}
}

// PlanFor devuelve el plan de acción para la categoría. Categorías sin
// plan específico reciben un plan genérico de respiración y chequeo.
func (r *Recommender) PlanFor(cat emotion.Category) ActionPlan {
	if plan, ok := r.plans[cat]; ok {
		return plan
	}
	return ActionPlan{
		Immediate: []Action{{Name: "Take a deep breath", Type: "breathing", Duration: "1 min"}},
		ShortTerm: []Action{{Name: "Check in with yourself", Type: "mindfulness", Duration: "10 min"}},
	}
}

// TypeInfo devuelve los metadatos de un tipo de acción, con un genérico
// para tipos desconocidos.
func (r *Recommender) TypeInfo(actionType string) ActionTypeInfo {
	if info, ok := r.types[actionType]; ok {
		return info
	}
	return ActionTypeInfo{Name: "General Activity", Icon: "⭐", Description: "A helpful activity"}
}

// EmergencyResources devuelve los recursos de crisis en orden fijo.
func (r *Recommender) EmergencyResources() []EmergencyResource {
	return []EmergencyResource{
		{
			Name:        "Crisis Text Line",
			Number:      "Text HOME to 741741",
			Description: "Free, 24/7 crisis support via text",
			URL:         "https://www.crisistextline.org",
		},
		{
			Name:        "National Suicide Prevention Lifeline",
			Number:      "988",
			Description: "Free, 24/7 suicide prevention support",
			URL:         "https://suicidepreventionlifeline.org",
		},
		{
			Name:        "Mental Health America",
			Number:      "1-800-273-8255",
			Description: "Mental health resources and support",
			URL:         "https://www.mhanational.org",
		},
		{
			Name:        "Emergency Services",
			Number:      "911",
			Description: "For immediate life-threatening emergencies",
		},
	}
}

// BreathingScript devuelve el guion del ejercicio de respiración guiada.
func (r *Recommender) BreathingScript() []string {
	return []string{
		"Welcome to your breathing exercise. Find a comfortable position.",
		"Close your eyes if that feels comfortable.",
		"We'll breathe together for three cycles.",
		"Breathe in slowly... one... two... three... four...",
		"Hold your breath... one... two... three... four...",
		"Breathe out slowly... one... two... three... four... five... six...",
		"That's one cycle. Let's do two more.",
		"Breathe in slowly... one... two... three... four...",
		"Hold your breath... one... two... three... four...",
		"Breathe out slowly... one... two... three... four... five... six...",
		"One more cycle.",
		"Breathe in slowly... one... two... three... four...",
		"Hold your breath... one... two... three... four...",
		"Breathe out slowly... one... two... three... four... five... six...",
		"Take a moment to notice how you feel.",
		"Thank you for taking this time for yourself.",
	}
}

// GroundingScript devuelve el guion del ejercicio 5-4-3-2-1.
func (r *Recommender) GroundingScript() []string {
	return []string{
		"Welcome to the 5-4-3-2-1 grounding exercise.",
		"This will help you feel more present and centered.",
		"Let's start with what you can see.",
		"Look around and name 5 things you can see.",
		"Take your time with each one.",
		"Now, notice 4 things you can touch.",
		"Feel the texture, temperature, and sensation of each.",
		"Next, listen for 3 things you can hear.",
		"Notice both near and far sounds.",
		"Now, notice 2 things you can smell.",
		"Take a gentle breath in through your nose.",
		"Finally, notice 1 thing you can taste.",
		"It might be the taste in your mouth right now.",
		"Take a deep breath and notice that you are here, in this moment.",
		"You are safe and present.",
	}
}

// BodyScanScript devuelve el guion del escaneo corporal guiado.
func (r *Recommender) BodyScanScript() []string {
	return []string{
		"Welcome to your body scan exercise.",
		"This will help you connect with your body and release tension.",
		"Start by finding a comfortable position.",
		"Close your eyes and take a deep breath.",
		"Begin at the top of your head.",
		"Notice any sensations there - tension, warmth, or anything else.",
		"Move your attention to your forehead.",
		"Notice any tightness or relaxation.",
		"Now your eyes and the muscles around them.",
		"Let them soften and relax.",
		"Move to your jaw.",
		"Notice if it's clenched or relaxed.",
		"Let your jaw drop slightly.",
		"Now your shoulders.",
		"Notice if they're tense or relaxed.",
		"Let them drop and relax.",
		"Move to your chest.",
		"Notice your breathing.",
		"Feel your chest rise and fall.",
		"Now your stomach area.",
		"Notice any sensations there.",
		"Move to your legs.",
		"Feel the weight of your legs.",
		"Finally, notice your feet.",
		"Feel them connected to the ground.",
		"Take a deep breath and notice how your whole body feels.",
		"Thank you for taking this time for yourself.",
	}
}

func defaultActionPlans() map[emotion.Category]ActionPlan {
	return map[emotion.Category]ActionPlan{
		emotion.CategoryAnxious: {
			Immediate: []Action{
				{Name: "3 Deep Breaths", Type: "breathing", Duration: "2 min"},
				{Name: "5-4-3-2-1 Grounding", Type: "grounding", Duration: "3 min"},
				{Name: "Quick Body Scan", Type: "mindfulness", Duration: "2 min"},
			},
			ShortTerm: []Action{
				{Name: "Take a 10-minute walk", Type: "movement", Duration: "10 min"},
				{Name: "Write down your worries", Type: "journaling", Duration: "15 min"},
				{Name: "Text a supportive friend", Type: "social", Duration: "5 min"},
			},
		},
		emotion.CategorySad: {
			Immediate: []Action{
				{Name: "Gentle Self-Hug", Type: "self-care", Duration: "1 min"},
				{Name: "Listen to Comforting Music", Type: "audio", Duration: "5 min"},
				{Name: "Look at Happy Photos", Type: "visual", Duration: "3 min"},
			},
			ShortTerm: []Action{
				{Name: "Take a warm shower", Type: "self-care", Duration: "15 min"},
				{Name: "Call someone you love", Type: "social", Duration: "20 min"},
				{Name: "Do something creative", Type: "expression", Duration: "30 min"},
			},
		},
		emotion.CategoryFrustrated: {
			Immediate: []Action{
				{Name: "10 Jumping Jacks", Type: "movement", Duration: "1 min"},
				{Name: "Scream into Pillow", Type: "release", Duration: "30 sec"},
				{Name: "Write Frustrations Down", Type: "journaling", Duration: "3 min"},
			},
			ShortTerm: []Action{
				{Name: "Go for a run or workout", Type: "movement", Duration: "30 min"},
				{Name: "Talk to someone about it", Type: "social", Duration: "20 min"},
				{Name: "Do something productive", Type: "action", Duration: "45 min"},
			},
		},
		emotion.CategoryOverwhelmed: {
			Immediate: []Action{
				{Name: "Brain Dump Everything", Type: "journaling", Duration: "5 min"},
				{Name: "Pick Just ONE Thing", Type: "focus", Duration: "2 min"},
				{Name: "Take 5 Deep Breaths", Type: "breathing", Duration: "2 min"},
			},
			ShortTerm: []Action{
				{Name: "Make a simple to-do list", Type: "organization", Duration: "10 min"},
				{Name: "Say no to one thing", Type: "boundaries", Duration: "5 min"},
				{Name: "Ask for help", Type: "social", Duration: "15 min"},
			},
		},
		emotion.CategoryCalm: {
			Immediate: []Action{
				{Name: "Savor This Moment", Type: "mindfulness", Duration: "2 min"},
				{Name: "Gentle Stretching", Type: "movement", Duration: "5 min"},
				{Name: "Gratitude Practice", Type: "mindfulness", Duration: "3 min"},
			},
			ShortTerm: []Action{
				{Name: "Plan something you enjoy", Type: "planning", Duration: "20 min"},
				{Name: "Have a meaningful conversation", Type: "social", Duration: "30 min"},
				{Name: "Do something creative", Type: "expression", Duration: "45 min"},
			},
		},
		emotion.CategoryHappy: {
			Immediate: []Action{
				{Name: "Share Your Joy", Type: "social", Duration: "2 min"},
				{Name: "Dance or Move", Type: "movement", Duration: "3 min"},
				{Name: "Write Down What's Good", Type: "journaling", Duration: "3 min"},
			},
			ShortTerm: []Action{
				{Name: "Do something fun", Type: "enjoyment", Duration: "30 min"},
				{Name: "Help someone else", Type: "service", Duration: "20 min"},
				{Name: "Plan more good things", Type: "planning", Duration: "15 min"},
			},
		},
		emotion.CategoryNeutral: {
			Immediate: []Action{
				{Name: "Check In With Body", Type: "mindfulness", Duration: "2 min"},
				{Name: "Do Something Small", Type: "action", Duration: "5 min"},
				{Name: "Connect With Someone", Type: "social", Duration: "3 min"},
			},
			ShortTerm: []Action{
				{Name: "Try something new", Type: "exploration", Duration: "30 min"},
				{Name: "Reflect on your needs", Type: "journaling", Duration: "20 min"},
				{Name: "Do something meaningful", Type: "purpose", Duration: "45 min"},
			},
		},
		emotion.CategoryTired: {
			Immediate: []Action{
				{Name: "Rest Your Eyes", Type: "rest", Duration: "3 min"},
				{Name: "Drink Water", Type: "self-care", Duration: "1 min"},
				{Name: "Gentle Stretching", Type: "movement", Duration: "2 min"},
			},
			ShortTerm: []Action{
				{Name: "Take a nap", Type: "rest", Duration: "20 min"},
				{Name: "Go to bed early", Type: "rest", Duration: "8 hours"},
				{Name: "Reduce commitments", Type: "boundaries", Duration: "10 min"},
			},
		},
	}
}

func defaultActionTypes() map[string]ActionTypeInfo {
	return map[string]ActionTypeInfo{
		"breathing":    {Name: "Breathing Exercise", Icon: "🫁", Description: "Guided breathing techniques"},
		"grounding":    {Name: "Grounding Technique", Icon: "🌍", Description: "Present-moment awareness exercises"},
		"mindfulness":  {Name: "Mindfulness Practice", Icon: "🧘", Description: "Mindful awareness activities"},
		"movement":     {Name: "Physical Movement", Icon: "🏃", Description: "Body-based interventions"},
		"journaling":   {Name: "Journaling", Icon: "📝", Description: "Written reflection and expression"},
		"social":       {Name: "Social Connection", Icon: "👥", Description: "Human connection activities"},
		"self-care":    {Name: "Self-Care", Icon: "🛁", Description: "Personal care activities"},
		"audio":        {Name: "Audio Therapy", Icon: "🎵", Description: "Sound-based interventions"},
		"visual":       {Name: "Visual Therapy", Icon: "👁️", Description: "Visual stimulation activities"},
		"release":      {Name: "Emotional Release", Icon: "💥", Description: "Safe emotional expression"},
		"focus":        {Name: "Focus Exercise", Icon: "🎯", Description: "Attention and concentration"},
		"organization": {Name: "Organization", Icon: "📋", Description: "Structuring and planning"},
		"boundaries":   {Name: "Boundary Setting", Icon: "🚧", Description: "Protecting personal limits"},
		"rest":         {Name: "Rest & Recovery", Icon: "😴", Description: "Physical and mental rest"},
		"enjoyment":    {Name: "Fun & Enjoyment", Icon: "🎉", Description: "Pleasurable activities"},
		"service":      {Name: "Service to Others", Icon: "🤝", Description: "Helping and giving"},
		"planning":     {Name: "Planning", Icon: "📅", Description: "Future-oriented activities"},
		"exploration":  {Name: "Exploration", Icon: "🔍", Description: "Discovery and learning"},
		"purpose":      {Name: "Purpose & Meaning", Icon: "⭐", Description: "Meaningful activities"},
		"expression":   {Name: "Creative Expression", Icon: "🎨", Description: "Creative outlets"},
		"action":       {Name: "Action", Icon: "⚡", Description: "Active engagement"},
	}
}
