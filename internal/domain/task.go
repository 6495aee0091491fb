package domain

import "time"

// TaskPriority enumerates urgency levels.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Task is a unit of work assigned to a staff member.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	Department  Department
	AssigneeID  string
	Assignee    *User
	CreatorID   string
	Creator     *User
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
