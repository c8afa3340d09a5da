package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

// CheckIn es un registro persistido de detección emocional: la decisión
// del motor más el vector de puntajes fusionados para búsquedas por
// similitud de estado.
type CheckIn struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	Category   string             `json:"category"`
	Label      string             `json:"label"`
	Confidence float64            `json:"confidence"`
	Indicators []string           `json:"indicators"`
	Scores     map[string]float64 `json:"scores"`
	Quality    string             `json:"quality"`
	// Embedding es el mapa fusionado como vector de 8 dimensiones en el
	// orden canónico del registro de categorías.
	Embedding pgvector.Vector `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
}
