package service

import (
	"moodlens/internal/content"
	"moodlens/internal/emotion"
)

// UIAction es una acción lista para mostrar: la sugerencia más los
// metadatos de su tipo.
type UIAction struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	TypeName    string `json:"type_name"`
	TypeIcon    string `json:"type_icon"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// UIActionPlan es el plan de acción formateado para la capa HTTP.
type UIActionPlan struct {
	Immediate []UIAction `json:"immediate"`
	ShortTerm []UIAction `json:"short_term"`
}

// RecommendationService arma planes de acción presentables a partir del
// contenido estático.
type RecommendationService struct {
	recommender *content.Recommender
}

func NewRecommendationService(recommender *content.Recommender) *RecommendationService {
	if recommender == nil {
		recommender = content.NewRecommender()
	}
	return &RecommendationService{recommender: recommender}
}

// PlanFor devuelve el plan de acción formateado para una categoría.
func (s *RecommendationService) PlanFor(cat emotion.Category) UIActionPlan {
	plan := s.recommender.PlanFor(cat)
	return UIActionPlan{
		Immediate: s.formatActions(plan.Immediate),
		ShortTerm: s.formatActions(plan.ShortTerm),
	}
}

// EmergencyResources expone los recursos de crisis.
func (s *RecommendationService) EmergencyResources() []content.EmergencyResource {
	return s.recommender.EmergencyResources()
}

// AudioScript devuelve el guion de audio guiado para un tipo de ejercicio.
// Tipos sin guion devuelven nil.
func (s *RecommendationService) AudioScript(exercise string) []string {
	switch exercise {
	case "breathing":
		return s.recommender.BreathingScript()
	case "grounding":
		return s.recommender.GroundingScript()
	case "body_scan":
		return s.recommender.BodyScanScript()
	default:
		return nil
	}
}

func (s *RecommendationService) formatActions(actions []content.Action) []UIAction {
	out := make([]UIAction, 0, len(actions))
	for _, a := range actions {
		info := s.recommender.TypeInfo(a.Type)
		out = append(out, UIAction{
			Name:        a.Name,
			Type:        a.Type,
			TypeName:    info.Name,
			TypeIcon:    info.Icon,
			Duration:    a.Duration,
			Description: info.Description,
		})
	}
	return out
}
