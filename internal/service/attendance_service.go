package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/backoffice-service/internal/config"
	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/events"
	"github.com/spec-kit/backoffice-service/internal/policy"
	"github.com/spec-kit/backoffice-service/internal/repository"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

// AttendanceService records daily attendance.
type AttendanceService struct {
	users        repository.UserRepository
	attendance   repository.AttendanceRepository
	managersOnly bool
	events       eventPublisher
	now          func() time.Time
}

// AttendanceDependencies bundles requirements for the attendance service.
type AttendanceDependencies struct {
	UserRepo       repository.UserRepository
	AttendanceRepo repository.AttendanceRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// AttendanceInput is the raw request for one record. Date is YYYY-MM-DD and
// defaults to today when empty.
type AttendanceInput struct {
	StaffID string
	Status  string
	Date    string
	Notes   *string
}

// NewAttendanceService constructs the service.
func NewAttendanceService(cfg config.PolicyConfig, deps AttendanceDependencies) *AttendanceService {
	return &AttendanceService{
		users:        deps.UserRepo,
		attendance:   deps.AttendanceRepo,
		managersOnly: cfg.AttendanceManagersOnly,
		events:       eventPublisher{dispatcher: deps.Dispatcher, logger: deps.Logger},
		now:          time.Now,
	}
}

// Record writes the attendance of one staff member for one day. A second
// write for the same (staff, date) replaces status and notes.
func (s *AttendanceService) Record(ctx context.Context, actor policy.Actor, input AttendanceInput) (*domain.Attendance, error) {
	staffID := strings.TrimSpace(input.StaffID)
	rawStatus := strings.TrimSpace(input.Status)
	if staffID == "" || rawStatus == "" {
		var missing []string
		if staffID == "" {
			missing = append(missing, "staff_id")
		}
		if rawStatus == "" {
			missing = append(missing, "status")
		}
		return nil, apperrors.NewValidationError("Missing required fields", map[string]any{"missing": missing})
	}
	if !policy.CanRecordAttendance(actor, s.managersOnly) {
		return nil, apperrors.NewForbidden("attendance requires admin or manager role")
	}
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, apperrors.NewValidationError("invalid staff_id", map[string]any{"field": "staff_id"})
	}
	status, err := domain.ParseAttendanceStatus(rawStatus)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "status"})
	}
	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD", map[string]any{"field": "date"})
	}

	staff, err := s.users.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff", map[string]any{"staff_id": staffID})
		}
		return nil, err
	}

	notes := input.Notes
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}

	record := &domain.Attendance{
		StaffID: staff.ID,
		Date:    date,
		Status:  status,
		Notes:   notes,
	}
	if err := s.attendance.Upsert(ctx, record); err != nil {
		return nil, err
	}
	record.Staff = staff

	s.events.publish(ctx, events.Event{
		Type:      events.EventAttendanceRecorded,
		SubjectID: record.ID,
		Actor:     policyActor(actor),
		Payload: events.AttendanceRecordedPayload{
			StaffID: staff.ID,
			Date:    date.Format(domain.DateLayout),
			Status:  status,
		},
	})
	return record, nil
}

func (s *AttendanceService) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := s.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(domain.DateLayout, raw)
}
