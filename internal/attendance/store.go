package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

// FindByEmployeeAndDate: 当日分の行を取得。なければ (nil, nil)
func (s *Store) FindByEmployeeAndDate(ctx context.Context, employeeID, on string) (*Attendance, error) {
	const q = `
	SELECT attendance_id, employee_id, DATE_FORMAT(attended_on, '%Y-%m-%d') AS attended_on, check_in, check_out, status
	FROM attendances
	WHERE employee_id = ? AND attended_on = ?
	LIMIT 1`

	var r attendanceRow
	err := s.db.QueryRowContext(ctx, q, employeeID, on).Scan(
		&r.AttendanceID, &r.EmployeeID, &r.AttendedOn, &r.CheckIn, &r.CheckOut, &r.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := r.toModel()
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, a *Attendance) error {
	const q = `
	INSERT INTO attendances (attendance_id, employee_id, attended_on, check_in, check_out, status)
	VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		a.AttendanceID, a.EmployeeID, a.AttendedOn, a.CheckIn, a.CheckOut, string(a.Status))
	return err
}

// SetCheckIn: シェル行（check_in 未設定）への打刻。status も PRESENT へ
func (s *Store) SetCheckIn(ctx context.Context, attendanceID string, at time.Time) error {
	const q = `UPDATE attendances SET check_in = ?, status = ? WHERE attendance_id = ?`
	_, err := s.db.ExecContext(ctx, q, at, string(StatusPresent), attendanceID)
	return err
}

func (s *Store) SetCheckOut(ctx context.Context, attendanceID string, at time.Time) error {
	const q = `UPDATE attendances SET check_out = ? WHERE attendance_id = ?`
	_, err := s.db.ExecContext(ctx, q, at, attendanceID)
	return err
}

// ListAll: 全従業員分を employees とJOINして日付降順で返す
func (s *Store) ListAll(ctx context.Context) ([]joinedRow, error) {
	const q = `
	SELECT a.employee_id, e.full_name, e.department, DATE_FORMAT(a.attended_on, '%Y-%m-%d') AS attended_on, a.check_in, a.check_out, a.status
	FROM attendances a
	JOIN employees e ON e.employee_id = a.employee_id
	ORDER BY a.attended_on DESC, e.full_name ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []joinedRow
	for rows.Next() {
		var r joinedRow
		if err := rows.Scan(&r.EmployeeID, &r.FullName, &r.Department, &r.AttendedOn, &r.CheckIn, &r.CheckOut, &r.Status); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	const q = `
	SELECT attendance_id, employee_id, DATE_FORMAT(attended_on, '%Y-%m-%d') AS attended_on, check_in, check_out, status
	FROM attendances
	WHERE employee_id = ?
	ORDER BY attended_on DESC`

	rows, err := s.db.QueryContext(ctx, q, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attendance
	for rows.Next() {
		var r attendanceRow
		if err := rows.Scan(&r.AttendanceID, &r.EmployeeID, &r.AttendedOn, &r.CheckIn, &r.CheckOut, &r.Status); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}
