package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// ErrSessionNotFound is returned when a session id has no live record.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	client *redis.Client
	prefix string
}

// NewSessionRepository returns a Redis-backed implementation. Records expire
// with the session so no sweeping is needed.
func NewSessionRepository(client *redis.Client, prefix string) SessionRepository {
	return &sessionRepository{client: client, prefix: prefix}
}

func (r *sessionRepository) key(id string) string {
	return r.prefix + "session:" + id
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	key := r.key(session.ID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"user_id", session.UserID,
			"created_at", session.CreatedAt.UTC().Format(time.RFC3339Nano),
			"expires_at", session.ExpiresAt.UTC().Format(time.RFC3339Nano),
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 || fields["user_id"] == "" {
		return nil, ErrSessionNotFound
	}

	session := &domain.Session{ID: id, UserID: fields["user_id"]}
	if session.CreatedAt, err = time.Parse(time.RFC3339Nano, fields["created_at"]); err != nil {
		return nil, err
	}
	if session.ExpiresAt, err = time.Parse(time.RFC3339Nano, fields["expires_at"]); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}
