package leaves

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// 承認ワークフローは未実装（status は PENDING のまま運用）
type LeaveRequest struct {
	LeaveID    string
	EmployeeID string
	StartDate  string // DATE → "YYYY-MM-DD"
	EndDate    string
	Reason     *string
	Status     Status
	CreatedAt  time.Time
}

func (l LeaveRequest) toDTO() LeaveResponse {
	return LeaveResponse{
		LeaveID:    l.LeaveID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC(),
	}
}
