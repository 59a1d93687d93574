package employees

import (
	"context"
	"database/sql"
	"errors"

	"KINTAI-backend/internal/platform/auth"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

const employeeColumns = `employee_id, full_name, email, department, role, is_active`

func scanEmployee(row *sql.Row) (*Employee, error) {
	var e Employee
	var role string
	var isActiveInt int
	err := row.Scan(&e.EmployeeID, &e.FullName, &e.Email, &e.Department, &role, &isActiveInt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Role = auth.Role(role)
	e.IsActive = isActiveInt != 0
	return &e, nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	const q = `
	SELECT ` + employeeColumns + `
	FROM employees
	ORDER BY full_name ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		var role string
		var isActiveInt int
		if err := rows.Scan(&e.EmployeeID, &e.FullName, &e.Email, &e.Department, &role, &isActiveInt); err != nil {
			return nil, err
		}
		e.Role = auth.Role(role)
		e.IsActive = isActiveInt != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	const q = `
	SELECT ` + employeeColumns + `
	FROM employees
	WHERE employee_id = ?
	LIMIT 1`
	return scanEmployee(s.db.QueryRowContext(ctx, q, employeeID))
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	const q = `
	SELECT ` + employeeColumns + `
	FROM employees
	WHERE email = ?
	LIMIT 1`
	return scanEmployee(s.db.QueryRowContext(ctx, q, email))
}

func (s *Store) Insert(ctx context.Context, e *Employee) error {
	const q = `
	INSERT INTO employees (employee_id, full_name, email, department, role, is_active)
	VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, e.EmployeeID, e.FullName, e.Email, e.Department, string(e.Role), boolToInt(e.IsActive))
	return err
}

// Update: employee_id の付け替え（=メール変更）もここで行う
func (s *Store) Update(ctx context.Context, oldID string, e *Employee) (int64, error) {
	const q = `
	UPDATE employees
	SET employee_id = ?, full_name = ?, email = ?, department = ?, role = ?
	WHERE employee_id = ?`
	res, err := s.db.ExecContext(ctx, q, e.EmployeeID, e.FullName, e.Email, e.Department, string(e.Role), oldID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, employeeID string) (int64, error) {
	const q = `DELETE FROM employees WHERE employee_id = ?`
	res, err := s.db.ExecContext(ctx, q, employeeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ===== user_credentials 側 =====

func (s *Store) CredentialExists(ctx context.Context, employeeID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM user_credentials WHERE employee_id = ? LIMIT 1`, employeeID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) InsertCredential(ctx context.Context, employeeID, passwordHash string) error {
	const q = `INSERT INTO user_credentials (employee_id, password_hash) VALUES (?, ?)`
	_, err := s.db.ExecContext(ctx, q, employeeID, passwordHash)
	return err
}

// UpdateCredentialID: メール変更時の識別子移行。
// Employee 側の更新と同一トランザクションで呼ぶこと
func (s *Store) UpdateCredentialID(ctx context.Context, oldID, newID string) (int64, error) {
	const q = `UPDATE user_credentials SET employee_id = ? WHERE employee_id = ?`
	res, err := s.db.ExecContext(ctx, q, newID, oldID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) DeleteCredential(ctx context.Context, employeeID string) (int64, error) {
	const q = `DELETE FROM user_credentials WHERE employee_id = ?`
	res, err := s.db.ExecContext(ctx, q, employeeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
