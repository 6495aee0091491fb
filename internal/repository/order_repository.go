package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT o.id, o.order_number, o.customer_name, o.customer_email, o.amount::text, o.status,
               o.assigned_to_id, o.created_at, o.updated_at, ` + userRefColumns("a") + `
        FROM orders o
        LEFT JOIN users a ON a.id = o.assigned_to_id
        ORDER BY o.created_at DESC, o.order_number`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var (
			order    domain.Order
			assignee userRef
		)
		dest := []any{
			&order.ID,
			&order.OrderNumber,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.Amount,
			&order.Status,
			&order.AssigneeID,
			&order.CreatedAt,
			&order.UpdatedAt,
		}
		if err := rows.Scan(append(dest, assignee.targets()...)...); err != nil {
			return nil, err
		}
		order.Assignee = assignee.user()
		result = append(result, order)
	}
	return result, rows.Err()
}
