package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice-service/internal/api/dto"
	"github.com/spec-kit/backoffice-service/internal/service"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

// AttendanceHandler records attendance.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Record handles POST /api/attendance/.
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.attendance.Record(c.UserContext(), actor, service.AttendanceInput{
		StaffID: req.StaffID,
		Status:  req.Status,
		Date:    req.Date,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAttendanceResponse(record))
}
