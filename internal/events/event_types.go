package events

import (
	"time"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated        EventType = "user_created"
	EventUserLoggedIn       EventType = "user_logged_in"
	EventUserLoggedOut      EventType = "user_logged_out"
	EventAttendanceRecorded EventType = "attendance_recorded"
)

// Actor identifies who caused an event. Empty for system actions such as seeding.
type Actor struct {
	UserID string      `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionPayload accompanies login and logout events.
type SessionPayload struct {
	SessionID string `json:"session_id"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	Email      string            `json:"email"`
	Role       domain.Role       `json:"role"`
	Department domain.Department `json:"department"`
}

// AttendanceRecordedPayload payload.
type AttendanceRecordedPayload struct {
	StaffID string                  `json:"staff_id"`
	Date    string                  `json:"date"`
	Status  domain.AttendanceStatus `json:"status"`
}
