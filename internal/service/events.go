package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/events"
	"github.com/spec-kit/backoffice-service/internal/policy"
)

// eventPublisher fills event metadata and publishes; failures are logged,
// never returned, so a broken subscriber cannot fail a request.
type eventPublisher struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

func (p eventPublisher) publish(ctx context.Context, event events.Event) {
	if p.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := p.dispatcher.Publish(ctx, event); err != nil && p.logger != nil {
		p.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}

func userActor(u *domain.User) events.Actor {
	if u == nil {
		return events.Actor{}
	}
	return events.Actor{UserID: u.ID, Role: u.Role}
}

func policyActor(a policy.Actor) events.Actor {
	return events.Actor{UserID: a.ID, Role: a.Role}
}
