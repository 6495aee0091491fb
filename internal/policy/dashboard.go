package policy

import "github.com/spec-kit/backoffice-service/internal/domain"

// HTML route paths.
const (
	PathLogin              = "/login/"
	PathAdminDashboard     = "/admin/dashboard/"
	PathTeamDashboard      = "/team/dashboard/"
	PathDeveloperDashboard = "/developer/dashboard/"
	PathNotFound           = "/not-found/"
)

// Dashboard names a role-specific landing page.
type Dashboard string

const (
	DashboardAdmin     Dashboard = "admin"
	DashboardTeam      Dashboard = "team"
	DashboardDeveloper Dashboard = "developer"
)

// Path returns the route serving the dashboard.
func (d Dashboard) Path() string {
	switch d {
	case DashboardAdmin:
		return PathAdminDashboard
	case DashboardTeam:
		return PathTeamDashboard
	case DashboardDeveloper:
		return PathDeveloperDashboard
	}
	return PathNotFound
}

// DashboardFor maps a role to exactly one dashboard. The second result is
// false for roles without one.
func DashboardFor(role domain.Role) (Dashboard, bool) {
	switch role {
	case domain.RoleAdmin, domain.RoleManager:
		return DashboardAdmin, true
	case domain.RoleTeam:
		return DashboardTeam, true
	case domain.RoleDeveloper:
		return DashboardDeveloper, true
	}
	return "", false
}

// CanViewDashboard reports whether the role lands on the given dashboard.
func CanViewDashboard(role domain.Role, d Dashboard) bool {
	got, ok := DashboardFor(role)
	return ok && got == d
}
