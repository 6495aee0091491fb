// Package repositorytest provides in-memory repositories for tests. They
// mirror the Postgres and Redis implementations closely enough for service
// and transport tests: the same filters, ordering, unique keys and errors.
package repositorytest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/backoffice-service/internal/domain"
	"github.com/spec-kit/backoffice-service/internal/repository"
)

const uniqueViolation = "23505"

// Store is a shared in-memory database backing every fake repository.
type Store struct {
	mu         sync.Mutex
	now        func() time.Time
	users      map[string]domain.User
	orders     []domain.Order
	tasks      []domain.Task
	articles   []domain.KnowledgeArticle
	attendance map[string]domain.Attendance
	sessions   map[string]domain.Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		now:        time.Now,
		users:      map[string]domain.User{},
		attendance: map[string]domain.Attendance{},
		sessions:   map[string]domain.Session{},
	}
}

// SetClock overrides the time source used for timestamps and expiry.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddOrder seeds an order.
func (s *Store) AddOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	stampCreated(&o.CreatedAt, &o.UpdatedAt, s.now())
	s.orders = append(s.orders, o)
	return o
}

// AddTask seeds a task.
func (s *Store) AddTask(t domain.Task) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	stampCreated(&t.CreatedAt, &t.UpdatedAt, s.now())
	s.tasks = append(s.tasks, t)
	return t
}

// AddArticle seeds a knowledge article.
func (s *Store) AddArticle(a domain.KnowledgeArticle) domain.KnowledgeArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	stampCreated(&a.CreatedAt, &a.UpdatedAt, s.now())
	s.articles = append(s.articles, a)
	return a
}

// Attendance returns every attendance record for the staff member.
func (s *Store) Attendance(staffID string) []domain.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Attendance
	for _, rec := range s.attendance {
		if rec.StaffID == staffID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ReplaceUser overwrites a stored user, e.g. to deactivate it.
func (s *Store) ReplaceUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// SessionCount reports how many sessions are stored.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func stampCreated(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}

func (s *Store) publicUser(id string) *domain.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &domain.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Department: u.Department}
}

// Users returns a UserRepository over the store.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Orders returns an OrderRepository over the store.
func (s *Store) Orders() repository.OrderRepository { return orderRepo{s} }

// Tasks returns a TaskRepository over the store.
func (s *Store) Tasks() repository.TaskRepository { return taskRepo{s} }

// Knowledge returns a KnowledgeRepository over the store.
func (s *Store) Knowledge() repository.KnowledgeRepository { return knowledgeRepo{s} }

// AttendanceRecords returns an AttendanceRepository over the store.
func (s *Store) AttendanceRecords() repository.AttendanceRepository { return attendanceRepo{s} }

// Sessions returns a SessionRepository over the store.
func (s *Store) Sessions() repository.SessionRepository { return sessionRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}
		}
	}
	user.ID = uuid.NewString()
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r userRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.User
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Email < out[j].Email
	})
	return out, nil
}

type orderRepo struct{ s *Store }

func (r orderRepo) List(_ context.Context) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if o.AssigneeID != nil {
			o.Assignee = r.s.publicUser(*o.AssigneeID)
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type taskRepo struct{ s *Store }

func (r taskRepo) List(_ context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Task
	for _, t := range r.s.tasks {
		match := t.AssigneeID == filter.AssigneeID
		if filter.Department != nil && t.Department == *filter.Department {
			match = true
		}
		if !match {
			continue
		}
		t.Assignee = r.s.publicUser(t.AssigneeID)
		t.Creator = r.s.publicUser(t.CreatorID)
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type knowledgeRepo struct{ s *Store }

func (r knowledgeRepo) List(_ context.Context, filter repository.KnowledgeFilter) ([]domain.KnowledgeArticle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.KnowledgeArticle
	for _, a := range r.s.articles {
		if filter.Department != nil && (a.Department == nil || *a.Department != *filter.Department) {
			continue
		}
		a.Creator = r.s.publicUser(a.CreatorID)
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type attendanceRepo struct{ s *Store }

func (r attendanceRepo) Upsert(_ context.Context, record *domain.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[record.StaffID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "attendance_staff_id_fkey"}
	}
	key := fmt.Sprintf("%s|%s", record.StaffID, record.Date.Format(domain.DateLayout))
	now := r.s.now()
	existing, ok := r.s.attendance[key]
	if ok {
		existing.Status = record.Status
		existing.Notes = record.Notes
		if now.After(existing.UpdatedAt) {
			existing.UpdatedAt = now
		}
	} else {
		existing = domain.Attendance{
			ID:        uuid.NewString(),
			StaffID:   record.StaffID,
			Date:      record.Date,
			Status:    record.Status,
			Notes:     record.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	r.s.attendance[key] = existing
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = existing.UpdatedAt
	return nil
}

type sessionRepo struct{ s *Store }

func (r sessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[session.ID] = *session
	return nil
}

func (r sessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[id]
	if !ok || sess.Expired(r.s.now()) {
		return nil, repository.ErrSessionNotFound
	}
	return &sess, nil
}

func (r sessionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, id)
	return nil
}
