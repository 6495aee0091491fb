package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice-service/internal/auth"
	"github.com/spec-kit/backoffice-service/internal/config"
	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/events"
	"github.com/spec-kit/backoffice-service/internal/repository"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

const pgUniqueViolation = "23505"

// AuthService authenticates staff and manages their sessions.
type AuthService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	sessionTTL time.Duration
	dummyHash  string
	events     eventPublisher
	now        func() time.Time
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// LoginResult is returned by a successful Authenticate.
type LoginResult struct {
	User    *domain.User
	Session *domain.Session
	Token   string
}

// NewUserInput describes an account to create. Empty role and department
// fall back to team and support.
type NewUserInput struct {
	Email      string
	Name       string
	Password   string
	Role       string
	Department string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	s := &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret),
		bcryptCost: cfg.Auth.BcryptCost,
		sessionTTL: cfg.Auth.SessionTTL(),
		events:     eventPublisher{dispatcher: deps.Dispatcher, logger: deps.Logger},
		now:        time.Now,
	}
	// Compared against when the email is unknown so both failure paths cost one bcrypt check.
	if hash, err := auth.HashPassword(uuid.NewString(), cfg.Auth.BcryptCost); err == nil {
		s.dummyHash = hash
	}
	return s
}

// Authenticate verifies credentials and opens a session. Unknown email,
// wrong password and disabled account all yield the same InvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*LoginResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewInvalidCredentials()
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if s.dummyHash != "" {
				_ = auth.ComparePassword(s.dummyHash, password)
			}
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil || !user.IsActive {
		return nil, apperrors.NewInvalidCredentials()
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.tokenMgr.GenerateToken(session.ID, user.ID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:      events.EventUserLoggedIn,
		SubjectID: user.ID,
		Actor:     userActor(user),
		Payload:   events.SessionPayload{SessionID: session.ID},
	})
	return &LoginResult{User: user, Session: session, Token: token}, nil
}

// CurrentUser resolves a presented token to its live session and user.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, *domain.Session, error) {
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid session")
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil, apperrors.NewUnauthorized("session ended")
		}
		return nil, nil, err
	}
	if session.UserID != claims.UserID() || session.Expired(s.now()) {
		return nil, nil, apperrors.NewUnauthorized("invalid session")
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, apperrors.NewUnauthorized("user disabled")
	}
	return user, session, nil
}

// EndSession revokes the session; its token stops working immediately.
func (s *AuthService) EndSession(ctx context.Context, user *domain.User, session *domain.Session) error {
	if session == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	s.events.publish(ctx, events.Event{
		Type:      events.EventUserLoggedOut,
		SubjectID: session.UserID,
		Actor:     userActor(user),
		Payload:   events.SessionPayload{SessionID: session.ID},
	})
	return nil
}

// CreateUser registers an account with a hashed password.
func (s *AuthService) CreateUser(ctx context.Context, input NewUserInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}
	if input.Password == "" {
		return nil, apperrors.NewValidationError("password is required", nil)
	}

	role := domain.RoleTeam
	if strings.TrimSpace(input.Role) != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "role"})
		}
		role = parsed
	}
	dept := domain.DepartmentSupport
	if strings.TrimSpace(input.Department) != "" {
		parsed, err := domain.ParseDepartment(input.Department)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "department"})
		}
		dept = parsed
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Role:         role,
		Department:   dept,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, err
	}

	s.events.publish(ctx, events.Event{
		Type:      events.EventUserCreated,
		SubjectID: user.ID,
		Payload: events.UserCreatedPayload{
			Email:      user.Email,
			Role:       user.Role,
			Department: user.Department,
		},
	})
	return user, nil
}
