package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role enumerates back office roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleTeam      Role = "team"
	RoleDeveloper Role = "developer"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTeam, RoleDeveloper:
		return true
	}
	return false
}

// Privileged is true for roles with department-wide visibility.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// ParseRole validates raw input against the closed role set.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

// Department enumerates organizational units.
type Department string

const (
	DepartmentSales       Department = "sales"
	DepartmentSupport     Department = "support"
	DepartmentDevelopment Department = "development"
	DepartmentManagement  Department = "management"
)

// Valid reports whether the department is one of the known departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentSales, DepartmentSupport, DepartmentDevelopment, DepartmentManagement:
		return true
	}
	return false
}

// ParseDepartment validates raw input against the closed department set.
func ParseDepartment(raw string) (Department, error) {
	dept := Department(strings.ToLower(strings.TrimSpace(raw)))
	if !dept.Valid() {
		return "", fmt.Errorf("unknown department %q", raw)
	}
	return dept, nil
}

// User is a staff account. Email is the identity key.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	Department   Department
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lower-cases an address for lookups and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
