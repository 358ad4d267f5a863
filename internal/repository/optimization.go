package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuberank/youtube-seo-assistant-go/internal/db"
	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
)

// OptimizationRepository defines operations for the saved-optimization library.
type OptimizationRepository interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, opt *models.SavedOptimization) error
	List(ctx context.Context, limit, offset int) ([]*models.SavedOptimization, int, error)
	Ping(ctx context.Context) error
}

type optimizationRepository struct {
	pool *pgxpool.Pool
}

// NewOptimizationRepository creates a new OptimizationRepository.
func NewOptimizationRepository(pool *pgxpool.Pool) OptimizationRepository {
	return &optimizationRepository{pool: pool}
}

// EnsureSchema creates the optimizations table if it does not exist.
func (r *optimizationRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS optimizations (
			id UUID PRIMARY KEY,
			keyword TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			tags_text TEXT NOT NULL DEFAULT '',
			has_custom_thumbnail BOOLEAN NOT NULL DEFAULT FALSE,
			in_playlists BOOLEAN NOT NULL DEFAULT FALSE,
			score INTEGER NOT NULL DEFAULT 0,
			entities TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_optimizations_created_at
			ON optimizations (created_at DESC);
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return db.WrapError(err, "ensure optimizations schema")
	}
	return nil
}

// Save inserts an optimization and fills in its generated fields.
func (r *optimizationRepository) Save(ctx context.Context, opt *models.SavedOptimization) error {
	if opt.ID == uuid.Nil {
		opt.ID = uuid.New()
	}

	query := `
		INSERT INTO optimizations
			(id, keyword, title, description, tags_text, has_custom_thumbnail, in_playlists, score, entities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		opt.ID,
		opt.Keyword,
		opt.Title,
		opt.Description,
		opt.TagsText,
		opt.HasCustomThumbnail,
		opt.InPlaylists,
		opt.Score,
		opt.Entities,
	).Scan(&opt.CreatedAt)
	if err != nil {
		return db.WrapError(err, "save optimization")
	}

	return nil
}

// List returns a page of optimizations, newest first, plus the total count.
func (r *optimizationRepository) List(ctx context.Context, limit, offset int) ([]*models.SavedOptimization, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM optimizations`).Scan(&total); err != nil {
		return nil, 0, db.WrapError(err, "count optimizations")
	}

	query := `
		SELECT id, keyword, title, description, tags_text,
		       has_custom_thumbnail, in_playlists, score, entities, created_at
		FROM optimizations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, db.WrapError(err, "list optimizations")
	}
	defer rows.Close()

	var items []*models.SavedOptimization
	for rows.Next() {
		var opt models.SavedOptimization
		if err := rows.Scan(
			&opt.ID,
			&opt.Keyword,
			&opt.Title,
			&opt.Description,
			&opt.TagsText,
			&opt.HasCustomThumbnail,
			&opt.InPlaylists,
			&opt.Score,
			&opt.Entities,
			&opt.CreatedAt,
		); err != nil {
			return nil, 0, db.WrapError(err, "scan optimization")
		}
		items = append(items, &opt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, db.WrapError(err, "iterate optimizations")
	}

	return items, total, nil
}

// Ping verifies database connectivity for health checks.
func (r *optimizationRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
