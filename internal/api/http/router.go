package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice-service/internal/api/http/handlers"
	"github.com/spec-kit/backoffice-service/internal/auth"
	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/policy"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Records        *handlers.RecordsHandler
	Attendance     *handlers.AttendanceHandler
	Dashboards     *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	required := cfg.AuthMiddleware.Handle
	privileged := auth.RequireRole(domain.RoleAdmin, domain.RoleManager)

	api := app.Group("/api")
	api.Post("/login/", cfg.Auth.Login)
	api.Get("/logout/", required, cfg.Auth.Logout)
	api.Post("/logout/", required, cfg.Auth.Logout)
	api.Get("/user/", required, cfg.Auth.Me)
	api.Get("/orders/", required, cfg.Records.Orders)
	api.Get("/tasks/", required, cfg.Records.Tasks)
	api.Get("/knowledge/", required, cfg.Records.Knowledge)
	api.Get("/team/", required, privileged, cfg.Records.Team)
	api.Post("/attendance/", required, cfg.Attendance.Record)

	optional := cfg.AuthMiddleware.Optional
	app.Get("/", cfg.Dashboards.Root)
	app.Get(policy.PathLogin, optional, cfg.Dashboards.Login)
	app.Get(policy.PathAdminDashboard, optional, cfg.Dashboards.Show(policy.DashboardAdmin))
	app.Get(policy.PathTeamDashboard, optional, cfg.Dashboards.Show(policy.DashboardTeam))
	app.Get(policy.PathDeveloperDashboard, optional, cfg.Dashboards.Show(policy.DashboardDeveloper))
	app.Get(policy.PathNotFound, optional, cfg.Dashboards.NotFound)
}
