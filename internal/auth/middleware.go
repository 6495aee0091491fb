package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/policy"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for one request.
type Principal struct {
	User    *domain.User
	Session *domain.Session
}

// Actor returns the policy view of the caller.
func (p *Principal) Actor() policy.Actor {
	return policy.ActorFromUser(p.User)
}

// SessionResolver turns a presented token into the live session and its user.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, *domain.Session, error)
}

// AuthMiddleware resolves session tokens and loads principals.
type AuthMiddleware struct {
	sessions   SessionResolver
	cookieName string
}

// NewAuthMiddleware constructs middleware. Tokens are read from the
// Authorization header first, then from the named cookie.
func NewAuthMiddleware(sessions SessionResolver, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookieName: cookieName}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, err := m.extractToken(c)
	if err != nil {
		return err
	}

	user, session, err := m.sessions.CurrentUser(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(principalKey, &Principal{User: user, Session: session})
	return c.Next()
}

// Optional loads the principal when a valid token is present and otherwise
// lets the request through anonymously. Used by the HTML routes, which
// redirect rather than fail.
func (m *AuthMiddleware) Optional(c *fiber.Ctx) error {
	token, err := m.extractToken(c)
	if err != nil {
		return c.Next()
	}
	user, session, err := m.sessions.CurrentUser(c.UserContext(), token)
	if err == nil {
		c.Locals(principalKey, &Principal{User: user, Session: session})
	} else if !apperrors.IsCode(err, apperrors.CodeUnauthorized) {
		return err
	}
	return c.Next()
}

func (m *AuthMiddleware) extractToken(c *fiber.Ctx) (string, error) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", apperrors.NewUnauthorized("invalid authorization header")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if m.cookieName != "" {
		if token := c.Cookies(m.cookieName); token != "" {
			return token, nil
		}
	}
	return "", apperrors.NewUnauthorized("authentication required")
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal.User != nil
}
