package leaves

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, l *LeaveRequest) error {
	const q = `
	INSERT INTO leave_requests (leave_id, employee_id, start_date, end_date, reason, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		l.LeaveID, l.EmployeeID, l.StartDate, l.EndDate, reasonOrNil(l.Reason), string(l.Status), l.CreatedAt)
	return err
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	const q = `
	SELECT leave_id, employee_id, DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'), reason, status, created_at
	FROM leave_requests
	WHERE employee_id = ?
	ORDER BY created_at DESC`
	return s.list(ctx, q, employeeID)
}

func (s *Store) ListAll(ctx context.Context) ([]LeaveRequest, error) {
	const q = `
	SELECT leave_id, employee_id, DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'), reason, status, created_at
	FROM leave_requests
	ORDER BY created_at DESC`
	return s.list(ctx, q)
}

func (s *Store) list(ctx context.Context, q string, args ...any) ([]LeaveRequest, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaveRequest
	for rows.Next() {
		var l LeaveRequest
		var status string
		if err := rows.Scan(&l.LeaveID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &status, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Status = Status(status)
		out = append(out, l)
	}
	return out, rows.Err()
}

func reasonOrNil(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
