package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// TaskFilter selects tasks assigned to AssigneeID, widened to a whole
// department when Department is set.
type TaskFilter struct {
	AssigneeID string
	Department *domain.Department
}

// TaskRepository encapsulates task persistence.
type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository instantiates repository.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

func buildTaskListQuery(filter TaskFilter) (string, []any) {
	base := `
        SELECT t.id, t.title, t.description, t.priority, t.status, t.department,
               t.assigned_to_id, t.created_by_id, t.due_date, t.created_at, t.updated_at,
               ` + userRefColumns("a") + `, ` + userRefColumns("c") + `
        FROM tasks t
        JOIN users a ON a.id = t.assigned_to_id
        JOIN users c ON c.id = t.created_by_id`

	args := []any{filter.AssigneeID}
	where := "t.assigned_to_id=$1"
	if filter.Department != nil {
		args = append(args, *filter.Department)
		where = fmt.Sprintf("(%s OR t.department=$%d)", where, len(args))
	}
	return fmt.Sprintf("%s WHERE %s ORDER BY t.created_at DESC", base, where), args
}

func (r *taskRepository) List(ctx context.Context, filter TaskFilter) ([]domain.Task, error) {
	query, args := buildTaskListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Task
	for rows.Next() {
		var (
			task     domain.Task
			assignee userRef
			creator  userRef
		)
		dest := []any{
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Priority,
			&task.Status,
			&task.Department,
			&task.AssigneeID,
			&task.CreatorID,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
		}
		dest = append(dest, assignee.targets()...)
		dest = append(dest, creator.targets()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		task.Assignee = assignee.user()
		task.Creator = creator.user()
		result = append(result, task)
	}
	return result, rows.Err()
}
