package employees

import "KINTAI-backend/internal/platform/auth"

// employee_id はメールアドレス。全エンティティ共通の結合キーとして使う
type Employee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	Role       auth.Role
	IsActive   bool
}

func (e Employee) toDTO() UserResponse {
	return UserResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.FullName,
		Email:      e.Email,
		Role:       string(e.Role),
		Department: e.Department,
	}
}
