package auth

import (
	"context"
	"database/sql"
	"errors"
)

// Role: 閉じた列挙。自由文字列で持つと不正な状態が作れてしまう
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Credential: ログイン資格情報（employees と employee_id = メールアドレスで紐づく）
type Credential struct {
	EmployeeID   string
	PasswordHash string
}

// Account: 資格情報＋従業員プロフィールの結合ビュー（認証後の主体）
type Account struct {
	EmployeeID   string
	PasswordHash string
	FullName     string
	Email        string
	Department   string
	Role         Role
	IsActive     bool
}

type AccountStore interface {
	GetCredential(ctx context.Context, employeeID string) (*Credential, error)
	GetAccount(ctx context.Context, employeeID string) (*Account, error)
	CreateEmployee(ctx context.Context, name, email, department string, role Role) error
	CreateCredential(ctx context.Context, employeeID, passwordHash string) error
}

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) AccountStore { return &Store{db: db} }

func (s *Store) GetCredential(ctx context.Context, employeeID string) (*Credential, error) {
	const q = `
SELECT employee_id, password_hash
FROM user_credentials
WHERE employee_id = ?
LIMIT 1
`
	var c Credential
	err := s.db.QueryRowContext(ctx, q, employeeID).Scan(&c.EmployeeID, &c.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetAccount(ctx context.Context, employeeID string) (*Account, error) {
	const q = `
SELECT c.employee_id, c.password_hash, e.full_name, e.email, e.department, e.role, e.is_active
FROM user_credentials c
JOIN employees e ON e.employee_id = c.employee_id
WHERE c.employee_id = ?
LIMIT 1
`
	var a Account
	var role string
	var isActiveInt int
	err := s.db.QueryRowContext(ctx, q, employeeID).Scan(
		&a.EmployeeID,
		&a.PasswordHash,
		&a.FullName,
		&a.Email,
		&a.Department,
		&role,
		&isActiveInt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.Role = Role(role)
	if isActiveInt != 0 {
		a.IsActive = true
	}
	return &a, nil
}

func (s *Store) CreateEmployee(ctx context.Context, name, email, department string, role Role) error {
	const q = `
INSERT INTO employees (employee_id, full_name, email, department, role, is_active)
VALUES (?, ?, ?, ?, ?, 1)
`
	_, err := s.db.ExecContext(ctx, q, email, name, email, department, string(role))
	return err
}

func (s *Store) CreateCredential(ctx context.Context, employeeID, passwordHash string) error {
	const q = `
INSERT INTO user_credentials (employee_id, password_hash)
VALUES (?, ?)
`
	_, err := s.db.ExecContext(ctx, q, employeeID, passwordHash)
	return err
}
