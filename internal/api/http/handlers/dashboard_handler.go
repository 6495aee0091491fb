package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice-service/internal/api/dto"
	"github.com/spec-kit/backoffice-service/internal/auth"
	"github.com/spec-kit/backoffice-service/internal/policy"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

// DashboardHandler serves the page routes. It only decides where a caller
// belongs; rendering is left to the front end.
type DashboardHandler struct{}

// NewDashboardHandler constructs handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Root handles GET /.
func (h *DashboardHandler) Root(c *fiber.Ctx) error {
	return c.Redirect(policy.PathLogin, fiber.StatusFound)
}

// Login handles GET /login/. Signed-in callers go straight to their dashboard.
func (h *DashboardHandler) Login(c *fiber.Ctx) error {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		if d, ok := policy.DashboardFor(principal.User.Role); ok {
			return c.Redirect(d.Path(), fiber.StatusFound)
		}
	}
	return c.JSON(fiber.Map{
		"page":   "login",
		"action": "/api/login/",
	})
}

// Show returns the handler for one dashboard. Anonymous callers and callers
// whose role maps elsewhere are sent to the login page.
func (h *DashboardHandler) Show(d policy.Dashboard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok || !policy.CanViewDashboard(principal.User.Role, d) {
			return c.Redirect(policy.PathLogin, fiber.StatusFound)
		}
		return c.JSON(fiber.Map{
			"dashboard": d,
			"user":      dto.NewUserResponse(principal.User),
		})
	}
}

// NotFound handles GET /not-found/.
func (h *DashboardHandler) NotFound(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return c.Redirect(policy.PathLogin, fiber.StatusFound)
	}
	return apperrors.NewNotFound("page", nil)
}
