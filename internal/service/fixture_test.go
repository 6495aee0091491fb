package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/backoffice-service/internal/config"
	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/events"
	"github.com/spec-kit/backoffice-service/internal/policy"
	"github.com/spec-kit/backoffice-service/internal/repository/repositorytest"
)

type fixture struct {
	store      *repositorytest.Store
	dispatcher events.Dispatcher
	auth       *AuthService
	records    *RecordService
	attendance *AttendanceService
	published  []events.Event
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret",
			SessionTTLMinutes: 60,
			BcryptCost:        bcrypt.MinCost,
		},
	}
}

func newFixture(t *testing.T, cfg config.Config) *fixture {
	t.Helper()
	store := repositorytest.NewStore()
	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()

	f := &fixture{store: store, dispatcher: dispatcher}
	capture := func(_ context.Context, e events.Event) error {
		f.published = append(f.published, e)
		return nil
	}
	for _, et := range []events.EventType{events.EventUserCreated, events.EventUserLoggedIn, events.EventUserLoggedOut, events.EventAttendanceRecorded} {
		dispatcher.Subscribe(et, capture)
	}

	f.auth = NewAuthService(cfg, AuthDependencies{
		UserRepo:    store.Users(),
		SessionRepo: store.Sessions(),
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	f.records = NewRecordService(RecordDependencies{
		UserRepo:      store.Users(),
		OrderRepo:     store.Orders(),
		TaskRepo:      store.Tasks(),
		KnowledgeRepo: store.Knowledge(),
	})
	f.attendance = NewAttendanceService(cfg.Policy, AttendanceDependencies{
		UserRepo:       store.Users(),
		AttendanceRepo: store.AttendanceRecords(),
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	return f
}

func (f *fixture) user(t *testing.T, email string, role domain.Role, dept domain.Department) *domain.User {
	t.Helper()
	u, err := f.auth.CreateUser(context.Background(), NewUserInput{
		Email:      email,
		Name:       email,
		Password:   "password",
		Role:       string(role),
		Department: string(dept),
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) eventTypes() []events.EventType {
	var out []events.EventType
	for _, e := range f.published {
		out = append(out, e.Type)
	}
	return out
}

func actorOf(u *domain.User) policy.Actor {
	return policy.ActorFromUser(u)
}
