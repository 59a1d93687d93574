package auth

import (
	"context"
	"database/sql"

	"KINTAI-backend/internal/platform/apierr"
	"KINTAI-backend/internal/platform/db"
)

type Service struct {
	db     *sql.DB
	store  AccountStore
	tokens *TokenService
}

func NewService(conn *sql.DB, tokens *TokenService) *Service {
	return &Service{db: conn, store: NewStore(conn), tokens: tokens}
}

func (s *Service) Tokens() *TokenService { return s.tokens }

type RegisterParams struct {
	Name       string
	Email      string
	Password   string
	Department string
	Role       string
}

// Login: 資格情報を検証してトークンとアカウント情報を返す。
// 失敗理由（存在しない・パスワード不一致）は呼び出し側に区別させない
func (s *Service) Login(ctx context.Context, email, password string) (string, *Account, error) {
	acct, err := s.store.GetAccount(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if acct == nil || !VerifyPassword(password, acct.PasswordHash) {
		return "", nil, apierr.Unauthorized("Invalid email or password")
	}
	if !acct.IsActive {
		return "", nil, apierr.Unauthorized("Account disabled")
	}

	token, err := s.tokens.Issue(acct.EmployeeID)
	if err != nil {
		return "", nil, err
	}
	return token, acct, nil
}

// Register: Employee と Credential のペアを1トランザクションで作成する
func (s *Service) Register(ctx context.Context, p RegisterParams) error {
	exists, err := s.store.GetCredential(ctx, p.Email)
	if err != nil {
		return err
	}
	if exists != nil {
		return apierr.Conflict("Email already registered")
	}

	department := p.Department
	if department == "" {
		department = "General"
	}
	role := RoleEmployee
	if p.Role != "" {
		role = Role(p.Role)
		if !role.Valid() {
			return apierr.Invalid("role must be ADMIN or EMPLOYEE")
		}
	}

	hash, err := HashPassword(p.Password)
	if err != nil {
		return err
	}

	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)
		if err := st.CreateEmployee(ctx, p.Name, p.Email, department, role); err != nil {
			return err
		}
		return st.CreateCredential(ctx, p.Email, hash)
	})
}

// Authenticate: トークン検証後に資格情報を現在時点で引き直す。
// 発行済みトークンの失効はこのルックアップの失敗（=ユーザ削除）に依存する
func (s *Service) Authenticate(ctx context.Context, token string) (*Account, error) {
	sub, ok := s.tokens.Verify(token)
	if !ok {
		return nil, apierr.Unauthorized("Invalid or expired token")
	}

	acct, err := s.store.GetAccount(ctx, sub)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, apierr.Unauthorized("User not found")
	}
	return acct, nil
}
