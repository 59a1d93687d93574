package employees

import (
	"context"
	"database/sql"

	"KINTAI-backend/internal/platform/apierr"
	"KINTAI-backend/internal/platform/auth"
	"KINTAI-backend/internal/platform/db"
)

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(conn *sql.DB) *Service {
	return &Service{db: conn, store: NewStore(conn)}
}

func (s *Service) List(ctx context.Context) ([]UserResponse, error) {
	emps, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, e.toDTO())
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (*UserResponse, error) {
	emp, err := s.store.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apierr.NotFound("User not found")
	}
	dto := emp.toDTO()
	return &dto, nil
}

// Create: Employee と Credential のペアを1トランザクションで作成。
// 重複判定は資格情報側（= email をキーにした行）に対して行う
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.store.CredentialExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierr.Conflict("Email already exists")
	}

	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	department := req.Department
	if department == "" {
		department = "General"
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	emp := &Employee{
		EmployeeID: req.Email,
		FullName:   req.Name,
		Email:      req.Email,
		Department: department,
		Role:       role,
		IsActive:   true,
	}

	err = db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)
		if err := st.Insert(ctx, emp); err != nil {
			return err
		}
		return st.InsertCredential(ctx, req.Email, hash)
	})
	if err != nil {
		return nil, err
	}

	dto := emp.toDTO()
	return &dto, nil
}

// Update: メールが変わる場合は Credential 側の識別子を先に移行し、
// Employee 側の付け替えと同一トランザクションで確定させる
func (s *Service) Update(ctx context.Context, employeeID string, req UpdateUserRequest) (*UserResponse, error) {
	emp, err := s.store.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apierr.NotFound("User not found")
	}

	if emp.Email != req.Email {
		other, err := s.store.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.EmployeeID != employeeID {
			return nil, apierr.Conflict("Email already exists")
		}
	}

	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}

	updated := &Employee{
		EmployeeID: req.Email,
		FullName:   req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       role,
		IsActive:   emp.IsActive,
	}
	idChanged := emp.EmployeeID != req.Email

	err = db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)
		if idChanged {
			if _, err := st.UpdateCredentialID(ctx, emp.EmployeeID, req.Email); err != nil {
				return err
			}
		}
		n, err := st.Update(ctx, emp.EmployeeID, updated)
		if err != nil {
			return err
		}
		if n == 0 {
			return apierr.NotFound("User not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := updated.toDTO()
	return &dto, nil
}

// Delete: 自分自身は消せない。Credential → Employee の順に同一トランザクションで削除。
// 勤怠・休暇の行はカスケードしない（孤児行は許容）
func (s *Service) Delete(ctx context.Context, actorID, employeeID string) error {
	if actorID == employeeID {
		return apierr.Conflict("You cannot delete yourself")
	}

	emp, err := s.store.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp == nil {
		return apierr.NotFound("User not found")
	}

	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)
		// 資格情報が無いだけなら削除は続行する
		if _, err := st.DeleteCredential(ctx, employeeID); err != nil {
			return err
		}
		n, err := st.Delete(ctx, employeeID)
		if err != nil {
			return err
		}
		if n == 0 {
			return apierr.NotFound("User not found")
		}
		return nil
	})
}

func parseRole(v string) (auth.Role, error) {
	if v == "" {
		return auth.RoleEmployee, nil
	}
	role := auth.Role(v)
	if !role.Valid() {
		return "", apierr.Invalid("role must be ADMIN or EMPLOYEE")
	}
	return role, nil
}
