package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"legacy-server/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Compile-time check to ensure pgProjectRepository implements ProjectRepository
var _ ProjectRepository = (*pgProjectRepository)(nil)

type pgProjectRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgProjectRepository creates a PostgreSQL-backed ProjectRepository. The
// full scope is stored as JSONB next to a few indexed columns for listings.
func NewPgProjectRepository(db DBTX, logger *zap.Logger) ProjectRepository {
	return &pgProjectRepository{
		db:     db,
		logger: logger.Named("PgProjectRepo"),
	}
}

func (r *pgProjectRepository) Create(ctx context.Context, scope *models.ProjectScope) error {
	scopeJSON, err := json.Marshal(scope)
	if err != nil {
		r.logger.Error("Failed to marshal project scope", zap.Error(err), zap.String("projectID", scope.ProjectID))
		return fmt.Errorf("failed to marshal project scope: %w", err)
	}

	query := `INSERT INTO projects (project_id, subject_name, legacy_type, created_at, scope)
	          VALUES ($1, $2, $3, $4, $5)`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("projectID", scope.ProjectID))
	_, err = r.db.Exec(ctx, query, scope.ProjectID, scope.Subject.Name, scope.LegacyType, scope.CreatedAt, scopeJSON)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			// Project IDs are second-resolution timestamps; rewriting the same
			// confirm is treated as a no-op overwrite.
			r.logger.Warn("Project already exists, overwriting scope", zap.String("projectID", scope.ProjectID))
			return r.overwrite(ctx, scope, scopeJSON)
		}
		r.logger.Error("Failed to insert project into postgres", zap.Error(err), zap.String("projectID", scope.ProjectID))
		return fmt.Errorf("failed to insert project: %w", err)
	}
	r.logger.Info("Project scope persisted",
		zap.String("projectID", scope.ProjectID),
		zap.String("legacyType", scope.LegacyType),
		zap.String("subject", scope.Subject.Name),
	)
	return nil
}

func (r *pgProjectRepository) overwrite(ctx context.Context, scope *models.ProjectScope, scopeJSON []byte) error {
	query := `UPDATE projects SET subject_name = $2, legacy_type = $3, scope = $4 WHERE project_id = $1`
	if _, err := r.db.Exec(ctx, query, scope.ProjectID, scope.Subject.Name, scope.LegacyType, scopeJSON); err != nil {
		return fmt.Errorf("failed to overwrite project %s: %w", scope.ProjectID, err)
	}
	return nil
}

func (r *pgProjectRepository) GetByID(ctx context.Context, projectID string) (*models.ProjectScope, error) {
	query := `SELECT scope FROM projects WHERE project_id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("projectID", projectID))

	var scopeJSON []byte
	err := r.db.QueryRow(ctx, query, projectID).Scan(&scopeJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Project not found", zap.String("projectID", projectID))
			return nil, models.ErrProjectNotFound
		}
		r.logger.Error("Failed to get project from postgres", zap.Error(err), zap.String("projectID", projectID))
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var scope models.ProjectScope
	if err := json.Unmarshal(scopeJSON, &scope); err != nil {
		r.logger.Error("Failed to unmarshal stored project scope", zap.Error(err), zap.String("projectID", projectID))
		return nil, fmt.Errorf("corrupted scope data for project %s: %w", projectID, err)
	}
	return &scope, nil
}

func (r *pgProjectRepository) List(ctx context.Context, limit, offset int) ([]models.ProjectSummary, error) {
	query := `SELECT project_id, subject_name, legacy_type, created_at FROM projects
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.Int("limit", limit), zap.Int("offset", offset))

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to query projects from postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.ProjectSummary, 0)
	for rows.Next() {
		var s models.ProjectSummary
		if err := rows.Scan(&s.ProjectID, &s.SubjectName, &s.LegacyType, &s.CreatedAt); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating project rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return summaries, nil
}

func (r *pgProjectRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM projects`
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Error("Failed to get project count from postgres", zap.Error(err))
		return 0, fmt.Errorf("failed to get project count: %w", err)
	}
	return count, nil
}
