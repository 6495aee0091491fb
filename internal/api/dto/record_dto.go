package dto

import (
	"time"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// OrderResponse response.
type OrderResponse struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"order_number"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Amount        string             `json:"amount"`
	Status        domain.OrderStatus `json:"status"`
	AssignedTo    *UserResponse      `json:"assigned_to"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// TaskResponse response. DueDate is YYYY-MM-DD or null.
type TaskResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    domain.TaskPriority `json:"priority"`
	Status      domain.TaskStatus   `json:"status"`
	Department  domain.Department   `json:"department"`
	AssignedTo  *UserResponse       `json:"assigned_to"`
	CreatedBy   *UserResponse       `json:"created_by"`
	DueDate     *string             `json:"due_date"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// KnowledgeResponse response.
type KnowledgeResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Department *domain.Department `json:"department"`
	CreatedBy  *UserResponse      `json:"created_by"`
	IsPublic   bool               `json:"is_public"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// AttendanceRequest payload. Date is optional and defaults to today.
type AttendanceRequest struct {
	StaffID string  `json:"staff_id" form:"staff_id"`
	Status  string  `json:"status" form:"status"`
	Date    string  `json:"date" form:"date"`
	Notes   *string `json:"notes" form:"notes"`
}

// AttendanceResponse response.
type AttendanceResponse struct {
	ID        string                  `json:"id"`
	Staff     *UserResponse           `json:"staff"`
	Date      string                  `json:"date"`
	Status    domain.AttendanceStatus `json:"status"`
	Notes     *string                 `json:"notes"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// NewOrderResponses maps orders.
func NewOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
			Amount:        o.Amount,
			Status:        o.Status,
			AssignedTo:    NewUserResponse(o.Assignee),
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.UpdatedAt,
		})
	}
	return out
}

// NewTaskResponses maps tasks.
func NewTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		var due *string
		if t.DueDate != nil {
			s := t.DueDate.Format(domain.DateLayout)
			due = &s
		}
		out = append(out, TaskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      t.Status,
			Department:  t.Department,
			AssignedTo:  NewUserResponse(t.Assignee),
			CreatedBy:   NewUserResponse(t.Creator),
			DueDate:     due,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return out
}

// NewKnowledgeResponses maps articles.
func NewKnowledgeResponses(articles []domain.KnowledgeArticle) []KnowledgeResponse {
	out := make([]KnowledgeResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, KnowledgeResponse{
			ID:         a.ID,
			Title:      a.Title,
			Content:    a.Content,
			Department: a.Department,
			CreatedBy:  NewUserResponse(a.Creator),
			IsPublic:   a.IsPublic,
			CreatedAt:  a.CreatedAt,
			UpdatedAt:  a.UpdatedAt,
		})
	}
	return out
}

// NewAttendanceResponse maps an attendance record.
func NewAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		Staff:     NewUserResponse(a.Staff),
		Date:      a.Date.Format(domain.DateLayout),
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
