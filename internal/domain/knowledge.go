package domain

import "time"

// KnowledgeArticle is an internal guide, optionally scoped to a department.
type KnowledgeArticle struct {
	ID         string
	Title      string
	Content    string
	Department *Department
	CreatorID  string
	Creator    *User
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
