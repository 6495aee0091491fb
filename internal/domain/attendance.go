package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// AttendanceStatus enumerates daily attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceLeave   AttendanceStatus = "leave"
)

// Valid reports whether the status is known.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceLeave:
		return true
	}
	return false
}

// ParseAttendanceStatus validates raw input against the closed status set.
func ParseAttendanceStatus(raw string) (AttendanceStatus, error) {
	status := AttendanceStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown attendance status %q", raw)
	}
	return status, nil
}

// Attendance is the single record for one staff member on one day.
type Attendance struct {
	ID        string
	StaffID   string
	Staff     *User
	Date      time.Time
	Status    AttendanceStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
