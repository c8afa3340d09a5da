package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"moodlens/internal/domain"
	"moodlens/internal/emotion"
	"moodlens/internal/repository"
)

var ErrCheckInNotFound = errors.New("check-in not found")

// DetectionService corre el motor de detección y persiste el resultado
// como check-in del usuario.
type DetectionService struct {
	logger   *zap.Logger
	detector *emotion.Detector
	checkIns repository.CheckInRepository
	limiter  RateLimiter
}

func NewDetectionService(logger *zap.Logger, detector *emotion.Detector, checkIns repository.CheckInRepository, limiter RateLimiter) *DetectionService {
	if detector == nil {
		detector = emotion.NewDefaultDetector()
	}
	return &DetectionService{
		logger:   logger,
		detector: detector,
		checkIns: checkIns,
		limiter:  limiter,
	}
}

// PerformCheckIn detecta la emoción dominante y guarda el check-in.
// Devuelve también el resultado completo de detección para la respuesta.
func (s *DetectionService) PerformCheckIn(ctx context.Context, userID string, input emotion.DetectionInput) (domain.CheckIn, emotion.DetectionResult, error) {
	if s.checkIns == nil {
		return domain.CheckIn{}, emotion.DetectionResult{}, errors.New("detection service not configured")
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return domain.CheckIn{}, emotion.DetectionResult{}, ErrRateLimited
	}

	result := s.detector.Detect(input)

	checkIn := domain.CheckIn{
		ID:         uuid.NewString(),
		UserID:     userID,
		Category:   string(result.Category),
		Label:      result.Label,
		Confidence: result.Confidence,
		Indicators: result.Indicators,
		Scores:     scoresAsStrings(result.Scores),
		Quality:    string(result.Quality),
		Embedding:  ScoresVector(result.Scores),
		CreatedAt:  time.Now().UTC(),
	}
	if checkIn.Indicators == nil {
		checkIn.Indicators = []string{}
	}

	if err := s.checkIns.Create(ctx, checkIn); err != nil {
		return domain.CheckIn{}, emotion.DetectionResult{}, err
	}

	if s.logger != nil {
		s.logger.Info("check-in recorded",
			zap.String("user_id", userID),
			zap.String("category", checkIn.Category),
			zap.Float64("confidence", checkIn.Confidence),
		)
	}
	return checkIn, result, nil
}

func (s *DetectionService) GetCheckIn(ctx context.Context, userID, id string) (domain.CheckIn, error) {
	if s.checkIns == nil {
		return domain.CheckIn{}, errors.New("detection service not configured")
	}
	checkIn, err := s.checkIns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CheckIn{}, ErrCheckInNotFound
		}
		return domain.CheckIn{}, err
	}
	// Un check-in ajeno se reporta como inexistente.
	if checkIn.UserID != userID {
		return domain.CheckIn{}, ErrCheckInNotFound
	}
	return checkIn, nil
}

func (s *DetectionService) ListCheckIns(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error) {
	if s.checkIns == nil {
		return nil, errors.New("detection service not configured")
	}
	return s.checkIns.ListByUser(ctx, userID, limit)
}

// SimilarCheckIns busca los check-ins del usuario con estado emocional más
// parecido al indicado, usando distancia de coseno sobre el vector de
// puntajes fusionados. El propio check-in queda excluido.
func (s *DetectionService) SimilarCheckIns(ctx context.Context, userID, id string, k int) ([]domain.CheckIn, error) {
	if s.checkIns == nil {
		return nil, errors.New("detection service not configured")
	}
	reference, err := s.GetCheckIn(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		k = 5
	}
	// Se pide uno extra porque el más cercano es el propio check-in.
	found, err := s.checkIns.SimilarByEmbedding(ctx, userID, reference.Embedding, k+1)
	if err != nil {
		return nil, err
	}
	similar := make([]domain.CheckIn, 0, k)
	for _, c := range found {
		if c.ID == reference.ID {
			continue
		}
		similar = append(similar, c)
		if len(similar) == k {
			break
		}
	}
	return similar, nil
}

// ScoresVector serializa un mapa de puntajes como vector de 8 dimensiones
// en el orden canónico del registro de categorías.
func ScoresVector(scores emotion.ScoreMap) pgvector.Vector {
	cats := emotion.Categories()
	values := make([]float32, len(cats))
	for i, c := range cats {
		values[i] = float32(scores[c])
	}
	return pgvector.NewVector(values)
}

func scoresAsStrings(scores emotion.ScoreMap) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for c, v := range scores {
		out[string(c)] = v
	}
	return out
}
