package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legacy-server/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Compile-time check to ensure redisSessionRepository implements SessionRepository
var _ SessionRepository = (*redisSessionRepository)(nil)

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSessionRepository creates a Redis-backed SessionRepository. Every
// Save refreshes the TTL, so an active wizard never expires mid-walkthrough.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		client: client,
		ttl:    ttl,
		logger: logger.Named("RedisSessionRepo"),
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id.String())
}

func (r *redisSessionRepository) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("Failed to marshal session", zap.Error(err), zap.String("sessionID", session.ID.String()))
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := sessionKey(session.ID)
	r.logger.Debug("Saving session to Redis",
		zap.String("key", key),
		zap.Int("step", session.Step),
		zap.Duration("ttl", r.ttl),
	)
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save session to redis", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	key := sessionKey(id)
	r.logger.Debug("Getting session from Redis", zap.String("key", key))
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Session not found in Redis", zap.String("sessionID", id.String()))
			return nil, models.ErrSessionNotFound
		}
		r.logger.Error("Failed to get session from redis", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupted state is unrecoverable for the caller; surface it loudly.
		r.logger.Error("Failed to unmarshal session data from redis",
			zap.Error(err),
			zap.String("sessionID", id.String()),
		)
		return nil, fmt.Errorf("corrupted session data in redis for %s: %w", id.String(), err)
	}
	return &session, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := sessionKey(id)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to delete session from redis", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	if deleted == 0 {
		r.logger.Warn("Attempted to delete non-existent session", zap.String("sessionID", id.String()))
		// Idempotent delete, the session is gone either way.
	}
	return nil
}
