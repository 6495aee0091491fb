package service

import (
	"context"

	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/policy"
	"github.com/spec-kit/backoffice-service/internal/repository"
	apperrors "github.com/spec-kit/backoffice-service/pkg/util"
)

// RecordService serves the read side of the back office: orders, tasks,
// knowledge articles and the team roster, each filtered by policy.
type RecordService struct {
	users     repository.UserRepository
	orders    repository.OrderRepository
	tasks     repository.TaskRepository
	knowledge repository.KnowledgeRepository
}

// RecordDependencies bundles repositories for the record service.
type RecordDependencies struct {
	UserRepo      repository.UserRepository
	OrderRepo     repository.OrderRepository
	TaskRepo      repository.TaskRepository
	KnowledgeRepo repository.KnowledgeRepository
}

// NewRecordService constructs the service.
func NewRecordService(deps RecordDependencies) *RecordService {
	return &RecordService{
		users:     deps.UserRepo,
		orders:    deps.OrderRepo,
		tasks:     deps.TaskRepo,
		knowledge: deps.KnowledgeRepo,
	}
}

// ListOrders returns every order.
func (s *RecordService) ListOrders(ctx context.Context, actor policy.Actor) ([]domain.Order, error) {
	if !policy.CanListOrders(actor) {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.orders.List(ctx)
}

// ListTasks returns the tasks visible to the actor.
func (s *RecordService) ListTasks(ctx context.Context, actor policy.Actor) ([]domain.Task, error) {
	scope := policy.TaskScopeFor(actor)
	return s.tasks.List(ctx, repository.TaskFilter{
		AssigneeID: scope.AssigneeID,
		Department: scope.Department,
	})
}

// ListKnowledge returns the knowledge articles visible to the actor.
func (s *RecordService) ListKnowledge(ctx context.Context, actor policy.Actor) ([]domain.KnowledgeArticle, error) {
	scope := policy.KnowledgeScopeFor(actor)
	return s.knowledge.List(ctx, repository.KnowledgeFilter{Department: scope.Department})
}

// ListTeam returns every team-role user. Only admins and managers may ask.
func (s *RecordService) ListTeam(ctx context.Context, actor policy.Actor) ([]domain.User, error) {
	if !policy.CanListTeam(actor) {
		return nil, apperrors.NewForbidden("team roster requires admin or manager role")
	}
	return s.users.ListByRole(ctx, domain.RoleTeam)
}
