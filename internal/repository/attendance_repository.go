package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/backoffice-service/internal/domain"
)

// AttendanceRepository encapsulates attendance persistence.
type AttendanceRepository interface {
	// Upsert writes the (staff, date) record, replacing status and notes when
	// one already exists. ID and timestamps are filled from the stored row.
	Upsert(ctx context.Context, record *domain.Attendance) error
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) Upsert(ctx context.Context, record *domain.Attendance) error {
	const query = `
        INSERT INTO attendance (staff_id, date, status, notes)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (staff_id, date) DO UPDATE
            SET status = EXCLUDED.status,
                notes = EXCLUDED.notes,
                updated_at = GREATEST(attendance.updated_at, NOW())
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		record.Status,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}
