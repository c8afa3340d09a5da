package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"moodlens/internal/domain"
)

// CheckInRepository define la persistencia de check-ins emocionales.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn domain.CheckIn) error
	GetByID(ctx context.Context, id string) (domain.CheckIn, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]domain.CheckIn, error)
	SimilarByEmbedding(ctx context.Context, userID string, embedding pgvector.Vector, k int) ([]domain.CheckIn, error)
}

// PgCheckInRepository implementa CheckInRepository usando pgxpool. Los
// puntajes fusionados se guardan como jsonb y además como vector para
// búsquedas por similitud de estado emocional.
type PgCheckInRepository struct {
	pool *pgxpool.Pool
}

func NewPgCheckInRepository(pool *pgxpool.Pool) *PgCheckInRepository {
	return &PgCheckInRepository{pool: pool}
}

func (r *PgCheckInRepository) Create(ctx context.Context, checkIn domain.CheckIn) error {
	const query = `
		INSERT INTO check_ins (
			id, user_id, category, label, confidence, indicators, scores, quality, embedding, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.Category,
		checkIn.Label,
		checkIn.Confidence,
		checkIn.Indicators,
		checkIn.Scores,
		checkIn.Quality,
		checkIn.Embedding,
		checkIn.CreatedAt,
	)
	return err
}

func (r *PgCheckInRepository) GetByID(ctx context.Context, id string) (domain.CheckIn, error) {
	const query = `
		SELECT id, user_id, category, label, confidence, indicators, scores, quality, embedding, created_at
		FROM check_ins
		WHERE id = $1
	`
	var c domain.CheckIn
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.UserID,
		&c.Category,
		&c.Label,
		&c.Confidence,
		&c.Indicators,
		&c.Scores,
		&c.Quality,
		&c.Embedding,
		&c.CreatedAt,
	)
	return c, err
}

func (r *PgCheckInRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
		SELECT id, user_id, category, label, confidence, indicators, scores, quality, embedding, created_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

func (r *PgCheckInRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.CheckIn, error) {
	const query = `
		SELECT id, user_id, category, label, confidence, indicators, scores, quality, embedding, created_at
		FROM check_ins
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

func (r *PgCheckInRepository) SimilarByEmbedding(ctx context.Context, userID string, embedding pgvector.Vector, k int) ([]domain.CheckIn, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, user_id, category, label, confidence, indicators, scores, quality, embedding, created_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY embedding <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, embedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckIns(rows)
}

func scanCheckIns(rows pgxRows) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	for rows.Next() {
		var c domain.CheckIn
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Category,
			&c.Label,
			&c.Confidence,
			&c.Indicators,
			&c.Scores,
			&c.Quality,
			&c.Embedding,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return checkIns, nil
}

// pgxRows es la superficie mínima de pgx.Rows que necesita el scan,
// para poder sustituirla en tests.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
