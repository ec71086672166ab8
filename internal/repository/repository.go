package repository

import (
	"context"

	"legacy-server/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts a pgx pool, connection, or transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRepository stores in-flight wizard sessions.
type SessionRepository interface {
	// Save writes the session and refreshes its TTL.
	Save(ctx context.Context, session *models.Session) error
	// Get returns models.ErrSessionNotFound for unknown or expired IDs.
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository stores confirmed project scopes.
type ProjectRepository interface {
	Create(ctx context.Context, scope *models.ProjectScope) error
	// GetByID returns models.ErrProjectNotFound for unknown IDs.
	GetByID(ctx context.Context, projectID string) (*models.ProjectScope, error)
	List(ctx context.Context, limit, offset int) ([]models.ProjectSummary, error)
	Count(ctx context.Context) (int64, error)
}
