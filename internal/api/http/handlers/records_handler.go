package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice-service/internal/api/dto"
	"github.com/spec-kit/backoffice-service/internal/auth"
	"github.com/spec-kit/backoffice-service/internal/policy"
	"github.com/spec-kit/backoffice-service/internal/service"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

// RecordsHandler serves the read-only listings.
type RecordsHandler struct {
	records *service.RecordService
}

// NewRecordsHandler constructs handler.
func NewRecordsHandler(records *service.RecordService) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// Orders handles GET /api/orders/.
func (h *RecordsHandler) Orders(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orders, err := h.records.ListOrders(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponses(orders))
}

// Tasks handles GET /api/tasks/.
func (h *RecordsHandler) Tasks(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	tasks, err := h.records.ListTasks(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponses(tasks))
}

// Knowledge handles GET /api/knowledge/.
func (h *RecordsHandler) Knowledge(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	articles, err := h.records.ListKnowledge(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewKnowledgeResponses(articles))
}

// Team handles GET /api/team/.
func (h *RecordsHandler) Team(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	users, err := h.records.ListTeam(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}

func actorFrom(c *fiber.Ctx) (policy.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return policy.Actor{}, apperrors.NewUnauthorized("authentication required")
	}
	return principal.Actor(), nil
}
