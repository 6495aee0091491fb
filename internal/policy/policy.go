// Package policy decides what an authenticated staff member may see or change.
// Every function here is pure; callers translate a denial into a transport error.
package policy

import "github.com/spec-kit/backoffice-service/internal/domain"

// Actor is the subset of a user the rules look at.
type Actor struct {
	ID         string
	Role       domain.Role
	Department domain.Department
}

// ActorFromUser builds an Actor from a loaded user.
func ActorFromUser(u *domain.User) Actor {
	if u == nil {
		return Actor{}
	}
	return Actor{ID: u.ID, Role: u.Role, Department: u.Department}
}

// TaskScope restricts task listings. A task is visible when it is assigned to
// AssigneeID, or, when Department is set, when it belongs to that department.
type TaskScope struct {
	AssigneeID string
	Department *domain.Department
}

// TaskScopeFor returns the task visibility for the actor.
func TaskScopeFor(a Actor) TaskScope {
	scope := TaskScope{AssigneeID: a.ID}
	if a.Role.Privileged() {
		dept := a.Department
		scope.Department = &dept
	}
	return scope
}

// Allows evaluates the scope against a single task.
func (s TaskScope) Allows(t domain.Task) bool {
	if t.AssigneeID == s.AssigneeID {
		return true
	}
	return s.Department != nil && t.Department == *s.Department
}

// KnowledgeScope restricts article listings. A nil Department means everything.
type KnowledgeScope struct {
	Department *domain.Department
}

// KnowledgeScopeFor returns article visibility for the actor. Non-privileged
// actors only see articles of their own department; articles without a
// department are hidden from them.
func KnowledgeScopeFor(a Actor) KnowledgeScope {
	if a.Role.Privileged() {
		return KnowledgeScope{}
	}
	dept := a.Department
	return KnowledgeScope{Department: &dept}
}

// Allows evaluates the scope against a single article.
func (s KnowledgeScope) Allows(article domain.KnowledgeArticle) bool {
	if s.Department == nil {
		return true
	}
	return article.Department != nil && *article.Department == *s.Department
}

// CanListOrders reports whether the actor may read the order list. Any
// authenticated actor may.
func CanListOrders(a Actor) bool {
	return a.ID != ""
}

// CanListTeam reports whether the actor may read the team roster.
func CanListTeam(a Actor) bool {
	return a.Role.Privileged()
}

// CanRecordAttendance reports whether the actor may write attendance for any
// staff member. With managersOnly unset every authenticated actor may.
func CanRecordAttendance(a Actor, managersOnly bool) bool {
	if a.ID == "" {
		return false
	}
	if managersOnly {
		return a.Role.Privileged()
	}
	return true
}
