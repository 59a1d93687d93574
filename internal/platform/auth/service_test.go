package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KINTAI-backend/internal/platform/apierr"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewService(conn, NewTokenService([]byte("test-secret"), time.Minute)), mock
}

func accountRow(hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"employee_id", "password_hash", "full_name", "email", "department", "role", "is_active"}).
		AddRow("a@x.com", hash, "Alice Tanaka", "a@x.com", "Engineering", "EMPLOYEE", 1)
}

func TestLoginSuccess(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	hash, err := HashPassword("pw1")
	ast.NoError(err)

	mock.ExpectQuery("SELECT c.employee_id, c.password_hash, e.full_name").
		WithArgs("a@x.com").
		WillReturnRows(accountRow(hash))

	token, acct, err := svc.Login(context.Background(), "a@x.com", "pw1")
	ast.NoError(err)
	ast.NotEmpty(token)
	ast.Equal("Alice Tanaka", acct.FullName)
	ast.Equal(RoleEmployee, acct.Role)

	// トークンの subject は employee_id（=メール）
	sub, ok := svc.tokens.Verify(token)
	ast.True(ok)
	ast.Equal("a@x.com", sub)

	ast.NoError(mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	hash, err := HashPassword("pw1")
	ast.NoError(err)

	mock.ExpectQuery("SELECT c.employee_id, c.password_hash, e.full_name").
		WithArgs("a@x.com").
		WillReturnRows(accountRow(hash))

	_, _, err = svc.Login(context.Background(), "a@x.com", "pw2")
	ast.Error(err)
	ast.Equal(apierr.CodeUnauthorized, apierr.CodeOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT c.employee_id, c.password_hash, e.full_name").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "pw1")
	ast.Error(err)
	ast.Equal(apierr.CodeUnauthorized, apierr.CodeOf(err))
}

func TestLoginInactiveAccount(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	hash, err := HashPassword("pw1")
	ast.NoError(err)

	rows := sqlmock.NewRows([]string{"employee_id", "password_hash", "full_name", "email", "department", "role", "is_active"}).
		AddRow("a@x.com", hash, "Alice Tanaka", "a@x.com", "Engineering", "EMPLOYEE", 0)
	mock.ExpectQuery("SELECT c.employee_id, c.password_hash, e.full_name").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	_, _, err = svc.Login(context.Background(), "a@x.com", "pw1")
	ast.Error(err)
	ast.Equal(apierr.CodeUnauthorized, apierr.CodeOf(err))
}

func TestRegisterSuccess(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT employee_id, password_hash FROM user_credentials").
		WithArgs("b@x.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_credentials").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Register(context.Background(), RegisterParams{
		Name:     "Bob Suzuki",
		Email:    "b@x.com",
		Password: "pw1",
	})
	ast.NoError(err)
	ast.NoError(mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	rows := sqlmock.NewRows([]string{"employee_id", "password_hash"}).
		AddRow("b@x.com", "$2a$10$whatever")
	mock.ExpectQuery("SELECT employee_id, password_hash FROM user_credentials").
		WithArgs("b@x.com").
		WillReturnRows(rows)

	err := svc.Register(context.Background(), RegisterParams{
		Name:     "Bob Suzuki",
		Email:    "b@x.com",
		Password: "pw1",
	})
	ast.Error(err)
	ast.Equal(apierr.CodeConflict, apierr.CodeOf(err))
	ast.NoError(mock.ExpectationsWereMet())
}

func TestRegisterInvalidRole(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT employee_id, password_hash FROM user_credentials").
		WithArgs("b@x.com").
		WillReturnError(sql.ErrNoRows)

	err := svc.Register(context.Background(), RegisterParams{
		Name:     "Bob Suzuki",
		Email:    "b@x.com",
		Password: "pw1",
		Role:     "SUPERUSER",
	})
	ast.Error(err)
	ast.Equal(apierr.CodeInvalidArgument, apierr.CodeOf(err))
}

func TestAuthenticateDeletedUser(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)

	// トークン自体は有効なまま。削除済みユーザはルックアップで落ちる
	token, err := svc.tokens.Issue("gone@x.com")
	ast.NoError(err)

	mock.ExpectQuery("SELECT c.employee_id, c.password_hash, e.full_name").
		WithArgs("gone@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err = svc.Authenticate(context.Background(), token)
	ast.Error(err)
	ast.Equal(apierr.CodeUnauthorized, apierr.CodeOf(err))
}

func TestAuthenticateInvalidToken(t *testing.T) {
	ast := assert.New(t)
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "garbage")
	ast.Error(err)
	ast.Equal(apierr.CodeUnauthorized, apierr.CodeOf(err))
}
