package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

func TestNewUserResponseOmitsSecrets(t *testing.T) {
	assert.Nil(t, NewUserResponse(nil))

	resp := NewUserResponse(&domain.User{ID: "u1", Email: "a@b.c", Name: "A", Role: domain.RoleTeam, Department: domain.DepartmentSales, PasswordHash: "hash"})
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","email":"a@b.c","name":"A","role":"team","department":"sales"}`, string(raw))
}

func TestOrderResponseNullAssignee(t *testing.T) {
	out := NewOrderResponses([]domain.Order{{ID: "o1", OrderNumber: "ORD-1", Amount: "149.99", Status: domain.OrderStatusPending}})
	raw, err := json.Marshal(out[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["assigned_to"])
	assert.Equal(t, "149.99", decoded["amount"])
}

func TestTaskResponseDueDate(t *testing.T) {
	due := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	out := NewTaskResponses([]domain.Task{
		{ID: "t1", DueDate: &due, Assignee: &domain.User{ID: "u1"}},
		{ID: "t2"},
	})
	require.Len(t, out, 2)
	require.NotNil(t, out[0].DueDate)
	assert.Equal(t, "2024-06-30", *out[0].DueDate)
	assert.Equal(t, "u1", out[0].AssignedTo.ID)
	assert.Nil(t, out[1].DueDate)
	assert.Nil(t, out[1].CreatedBy)
}

func TestAttendanceResponseDate(t *testing.T) {
	resp := NewAttendanceResponse(&domain.Attendance{
		ID:     "a1",
		Date:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Status: domain.AttendanceLate,
		Staff:  &domain.User{ID: "s1", Email: "s@example.com"},
	})
	assert.Equal(t, "2024-05-02", resp.Date)
	assert.Equal(t, "s1", resp.Staff.ID)
}

func TestLoginResponseFlattensUser(t *testing.T) {
	resp := LoginResponse{
		UserResponse: *NewUserResponse(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleAdmin, Department: domain.DepartmentManagement}),
		Token:        "tok",
		ExpiresAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "u1", decoded["id"])
	assert.Equal(t, "admin", decoded["role"])
	assert.Equal(t, "tok", decoded["token"])
}
