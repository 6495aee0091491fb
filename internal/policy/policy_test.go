package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

func deptPtr(d domain.Department) *domain.Department { return &d }

func TestTaskScopeFor(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t1", AssigneeID: "u1", Department: domain.DepartmentSales},
		{ID: "t2", AssigneeID: "u2", Department: domain.DepartmentSales},
		{ID: "t3", AssigneeID: "u2", Department: domain.DepartmentSupport},
		{ID: "t4", AssigneeID: "u1", Department: domain.DepartmentSupport},
	}

	tests := []struct {
		name  string
		actor Actor
		want  []string
	}{
		{"team member sees own tasks only", Actor{ID: "u1", Role: domain.RoleTeam, Department: domain.DepartmentSales}, []string{"t1", "t4"}},
		{"developer sees own tasks only", Actor{ID: "u2", Role: domain.RoleDeveloper, Department: domain.DepartmentSales}, []string{"t2", "t3"}},
		{"manager sees department plus own", Actor{ID: "u1", Role: domain.RoleManager, Department: domain.DepartmentSales}, []string{"t1", "t2", "t4"}},
		{"admin sees department plus own", Actor{ID: "u9", Role: domain.RoleAdmin, Department: domain.DepartmentSupport}, []string{"t3", "t4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := TaskScopeFor(tt.actor)
			var got []string
			for _, task := range tasks {
				if scope.Allows(task) {
					got = append(got, task.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskScopeForNonPrivilegedHasNoDepartment(t *testing.T) {
	scope := TaskScopeFor(Actor{ID: "u1", Role: domain.RoleTeam, Department: domain.DepartmentSales})
	assert.Nil(t, scope.Department)
	assert.Equal(t, "u1", scope.AssigneeID)
}

func TestKnowledgeScopeFor(t *testing.T) {
	articles := []domain.KnowledgeArticle{
		{ID: "a1", Department: deptPtr(domain.DepartmentSales), IsPublic: true},
		{ID: "a2", Department: deptPtr(domain.DepartmentSupport), IsPublic: true},
		{ID: "a3", Department: nil, IsPublic: true},
		{ID: "a4", Department: deptPtr(domain.DepartmentSales), IsPublic: false},
	}

	tests := []struct {
		name  string
		actor Actor
		want  []string
	}{
		{"admin sees all", Actor{ID: "x", Role: domain.RoleAdmin, Department: domain.DepartmentManagement}, []string{"a1", "a2", "a3", "a4"}},
		{"manager sees all", Actor{ID: "x", Role: domain.RoleManager, Department: domain.DepartmentSupport}, []string{"a1", "a2", "a3", "a4"}},
		{"team sees own department", Actor{ID: "x", Role: domain.RoleTeam, Department: domain.DepartmentSales}, []string{"a1", "a4"}},
		{"developer without articles", Actor{ID: "x", Role: domain.RoleDeveloper, Department: domain.DepartmentDevelopment}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := KnowledgeScopeFor(tt.actor)
			var got []string
			for _, a := range articles {
				if scope.Allows(a) {
					got = append(got, a.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanListTeam(t *testing.T) {
	assert.True(t, CanListTeam(Actor{ID: "1", Role: domain.RoleAdmin}))
	assert.True(t, CanListTeam(Actor{ID: "1", Role: domain.RoleManager}))
	assert.False(t, CanListTeam(Actor{ID: "1", Role: domain.RoleTeam}))
	assert.False(t, CanListTeam(Actor{ID: "1", Role: domain.RoleDeveloper}))
}

func TestCanListOrders(t *testing.T) {
	assert.True(t, CanListOrders(Actor{ID: "1", Role: domain.RoleTeam}))
	assert.False(t, CanListOrders(Actor{}))
}

func TestCanRecordAttendance(t *testing.T) {
	team := Actor{ID: "1", Role: domain.RoleTeam}
	manager := Actor{ID: "2", Role: domain.RoleManager}

	assert.True(t, CanRecordAttendance(team, false))
	assert.False(t, CanRecordAttendance(team, true))
	assert.True(t, CanRecordAttendance(manager, true))
	assert.False(t, CanRecordAttendance(Actor{}, false))
}

func TestDashboardFor(t *testing.T) {
	tests := []struct {
		role domain.Role
		want Dashboard
		path string
		ok   bool
	}{
		{domain.RoleAdmin, DashboardAdmin, PathAdminDashboard, true},
		{domain.RoleManager, DashboardAdmin, PathAdminDashboard, true},
		{domain.RoleTeam, DashboardTeam, PathTeamDashboard, true},
		{domain.RoleDeveloper, DashboardDeveloper, PathDeveloperDashboard, true},
		{domain.Role("guest"), "", PathNotFound, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, ok := DashboardFor(tt.role)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.path, got.Path())
		})
	}
}

func TestCanViewDashboard(t *testing.T) {
	assert.True(t, CanViewDashboard(domain.RoleManager, DashboardAdmin))
	assert.False(t, CanViewDashboard(domain.RoleTeam, DashboardAdmin))
	assert.False(t, CanViewDashboard(domain.RoleAdmin, DashboardDeveloper))
}

func TestActorFromUser(t *testing.T) {
	u := &domain.User{ID: "u1", Role: domain.RoleTeam, Department: domain.DepartmentSupport}
	assert.Equal(t, Actor{ID: "u1", Role: domain.RoleTeam, Department: domain.DepartmentSupport}, ActorFromUser(u))
	assert.Equal(t, Actor{}, ActorFromUser(nil))
}
