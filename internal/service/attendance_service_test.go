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

func strPtr(s string) *string { return &s }

func TestRecordAttendanceUpsertsOnePerDay(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	manager := f.user(t, "m@example.com", domain.RoleManager, domain.DepartmentSupport)
	staff := f.user(t, "s@example.com", domain.RoleTeam, domain.DepartmentSupport)

	first, err := f.attendance.Record(ctx, actorOf(manager), AttendanceInput{
		StaffID: staff.ID, Status: "present", Date: "2024-05-02", Notes: strPtr("on time"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AttendancePresent, first.Status)
	require.NotNil(t, first.Staff)
	assert.Equal(t, staff.Email, first.Staff.Email)

	second, err := f.attendance.Record(ctx, actorOf(manager), AttendanceInput{
		StaffID: staff.ID, Status: "late", Date: "2024-05-02",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	records := f.store.Attendance(staff.ID)
	require.Len(t, records, 1)
	assert.Equal(t, domain.AttendanceLate, records[0].Status)
	assert.Nil(t, records[0].Notes)

	_, err = f.attendance.Record(ctx, actorOf(manager), AttendanceInput{
		StaffID: staff.ID, Status: "absent", Date: "2024-05-03",
	})
	require.NoError(t, err)
	assert.Len(t, f.store.Attendance(staff.ID), 2)

	assert.Contains(t, f.eventTypes(), events.EventAttendanceRecorded)
}

func TestRecordAttendanceDefaultsToToday(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	staff := f.user(t, "s@example.com", domain.RoleTeam, domain.DepartmentSupport)
	f.attendance.now = func() time.Time { return time.Date(2024, 7, 9, 23, 30, 0, 0, time.UTC) }

	rec, err := f.attendance.Record(ctx, actorOf(staff), AttendanceInput{StaffID: staff.ID, Status: "leave", Notes: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-09", rec.Date.Format(domain.DateLayout))
	assert.Nil(t, rec.Notes)
}

func TestRecordAttendanceValidation(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	manager := f.user(t, "m@example.com", domain.RoleManager, domain.DepartmentSupport)
	staff := f.user(t, "s@example.com", domain.RoleTeam, domain.DepartmentSupport)

	tests := []struct {
		name  string
		input AttendanceInput
		code  string
	}{
		{"missing staff", AttendanceInput{Status: "present"}, apperrors.CodeValidation},
		{"missing status", AttendanceInput{StaffID: staff.ID}, apperrors.CodeValidation},
		{"malformed staff id", AttendanceInput{StaffID: "not-a-uuid", Status: "present"}, apperrors.CodeValidation},
		{"unknown status", AttendanceInput{StaffID: staff.ID, Status: "sick"}, apperrors.CodeValidation},
		{"bad date", AttendanceInput{StaffID: staff.ID, Status: "present", Date: "02/05/2024"}, apperrors.CodeValidation},
		{"unknown staff", AttendanceInput{StaffID: "7b0f4bb8-2f7d-4e4e-9d69-6f6a0cc2ab11", Status: "present"}, apperrors.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.attendance.Record(ctx, actorOf(manager), tt.input)
			assert.True(t, apperrors.IsCode(err, tt.code), "got %v", err)
		})
	}
	assert.Empty(t, f.store.Attendance(staff.ID))
}

func TestRecordAttendanceMissingFieldsDetails(t *testing.T) {
	f := newFixture(t, testConfig())
	manager := f.user(t, "m@example.com", domain.RoleManager, domain.DepartmentSupport)

	_, err := f.attendance.Record(context.Background(), actorOf(manager), AttendanceInput{})
	derr := apperrors.ToDomainError(err)
	assert.Equal(t, "Missing required fields", derr.Message)
	assert.Equal(t, []string{"staff_id", "status"}, derr.Details["missing"])
}

func TestRecordAttendanceManagersOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Policy.AttendanceManagersOnly = true
	f := newFixture(t, cfg)
	ctx := context.Background()
	admin := f.user(t, "a@example.com", domain.RoleAdmin, domain.DepartmentManagement)
	staff := f.user(t, "s@example.com", domain.RoleTeam, domain.DepartmentSupport)
	input := AttendanceInput{StaffID: staff.ID, Status: "present", Date: "2024-05-02"}

	_, err := f.attendance.Record(ctx, actorOf(staff), input)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	_, err = f.attendance.Record(ctx, actorOf(admin), input)
	assert.NoError(t, err)
}
