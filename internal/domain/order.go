package domain

import "time"

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is a customer order handled by staff.
type Order struct {
	ID            string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	// Amount keeps the NUMERIC(10,2) text form, e.g. "149.99".
	Amount     string
	Status     OrderStatus
	AssigneeID *string
	Assignee   *User
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
