package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/events"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

func TestAuthenticateSuccess(t *testing.T) {
	f := newFixture(t, testConfig())
	admin := f.user(t, "admin@example.com", domain.RoleAdmin, domain.DepartmentManagement)
	ctx := context.Background()

	res, err := f.auth.Authenticate(ctx, "  Admin@Example.com ", "password")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, res.User.ID)
	assert.Equal(t, domain.RoleAdmin, res.User.Role)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, 1, f.store.SessionCount())

	user, session, err := f.auth.CurrentUser(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)
	assert.Equal(t, res.Session.ID, session.ID)
	assert.Contains(t, f.eventTypes(), events.EventUserLoggedIn)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t, testConfig())
	f.user(t, "team@example.com", domain.RoleTeam, domain.DepartmentSales)
	ctx := context.Background()

	cases := map[string][2]string{
		"unknown email":  {"nobody@example.com", "password"},
		"wrong password": {"team@example.com", "nope"},
		"empty password": {"team@example.com", ""},
		"empty email":    {"", "password"},
	}

	var messages []string
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := f.auth.Authenticate(ctx, creds[0], creds[1])
			assert.Nil(t, res)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
			messages = append(messages, err.Error())
		})
	}
	for _, msg := range messages {
		assert.Equal(t, "Invalid credentials", msg)
	}
	assert.Equal(t, 0, f.store.SessionCount())
}

func TestAuthenticateInactiveUser(t *testing.T) {
	f := newFixture(t, testConfig())
	u := f.user(t, "gone@example.com", domain.RoleTeam, domain.DepartmentSales)
	ctx := context.Background()

	stored, err := f.store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	stored.IsActive = false
	f.store.ReplaceUser(*stored)

	_, err = f.auth.Authenticate(ctx, "gone@example.com", "password")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
}

func TestEndSessionRevokesToken(t *testing.T) {
	f := newFixture(t, testConfig())
	f.user(t, "dev@example.com", domain.RoleDeveloper, domain.DepartmentDevelopment)
	ctx := context.Background()

	res, err := f.auth.Authenticate(ctx, "dev@example.com", "password")
	require.NoError(t, err)

	require.NoError(t, f.auth.EndSession(ctx, res.User, res.Session))
	assert.Equal(t, 0, f.store.SessionCount())

	_, _, err = f.auth.CurrentUser(ctx, res.Token)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	assert.Contains(t, f.eventTypes(), events.EventUserLoggedOut)
}

func TestCurrentUserRejectsExpiredSession(t *testing.T) {
	f := newFixture(t, testConfig())
	f.user(t, "team@example.com", domain.RoleTeam, domain.DepartmentSales)
	ctx := context.Background()

	res, err := f.auth.Authenticate(ctx, "team@example.com", "password")
	require.NoError(t, err)

	later := time.Now().Add(2 * time.Hour)
	f.auth.now = func() time.Time { return later }

	_, _, err = f.auth.CurrentUser(ctx, res.Token)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestCurrentUserRejectsGarbageToken(t *testing.T) {
	f := newFixture(t, testConfig())
	_, _, err := f.auth.CurrentUser(context.Background(), "garbage")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestCreateUserDefaultsAndValidation(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	u, err := f.auth.CreateUser(ctx, NewUserInput{Email: "New@Example.com", Name: " New ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
	assert.Equal(t, "New", u.Name)
	assert.Equal(t, domain.RoleTeam, u.Role)
	assert.Equal(t, domain.DepartmentSupport, u.Department)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "pw", u.PasswordHash)

	_, err = f.auth.CreateUser(ctx, NewUserInput{Email: "new@example.com", Password: "pw"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))

	_, err = f.auth.CreateUser(ctx, NewUserInput{Email: "x@example.com", Password: "pw", Role: "employee"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = f.auth.CreateUser(ctx, NewUserInput{Email: "x@example.com", Password: "pw", Department: "hr"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = f.auth.CreateUser(ctx, NewUserInput{Email: "", Password: "pw"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = f.auth.CreateUser(ctx, NewUserInput{Email: "y@example.com"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}
