package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

func TestBuildTaskListQueryAssigneeOnly(t *testing.T) {
	query, args := buildTaskListQuery(TaskFilter{AssigneeID: "u1"})

	assert.Contains(t, query, "WHERE t.assigned_to_id=$1 ORDER BY")
	assert.NotContains(t, query, "t.department=$")
	assert.Equal(t, []any{"u1"}, args)
}

func TestBuildTaskListQueryWithDepartment(t *testing.T) {
	dept := domain.DepartmentSales
	query, args := buildTaskListQuery(TaskFilter{AssigneeID: "u1", Department: &dept})

	assert.Contains(t, query, "WHERE (t.assigned_to_id=$1 OR t.department=$2)")
	assert.Equal(t, []any{"u1", domain.DepartmentSales}, args)
}

func TestBuildKnowledgeListQuery(t *testing.T) {
	query, args := buildKnowledgeListQuery(KnowledgeFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)

	dept := domain.DepartmentSupport
	query, args = buildKnowledgeListQuery(KnowledgeFilter{Department: &dept})
	assert.True(t, strings.Contains(query, "WHERE k.department=$1"))
	assert.Equal(t, []any{domain.DepartmentSupport}, args)
}

func TestUserRefNullable(t *testing.T) {
	var ref userRef
	assert.Nil(t, ref.user())

	id, email, name := "u1", "a@b.c", "A"
	role, dept := domain.RoleTeam, domain.DepartmentSales
	ref = userRef{ID: &id, Email: &email, Name: &name, Role: &role, Department: &dept}
	assert.Equal(t, &domain.User{ID: id, Email: email, Name: name, Role: role, Department: dept}, ref.user())
}
