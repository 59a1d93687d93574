package leaves

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"KINTAI-backend/internal/platform/apierr"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type IDGen interface {
	New() (string, error)
}

type ulidGen struct{}

func (ulidGen) New() (string, error) {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type Service struct {
	db    *sql.DB
	store *Store
	clock Clock
	id    IDGen
}

func NewService(conn *sql.DB) *Service {
	return &Service{
		db:    conn,
		store: NewStore(conn),
		clock: realClock{},
		id:    ulidGen{},
	}
}

// Submit: PENDING の休暇申請を登録する（承認操作は無い）
func (s *Service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (*LeaveResponse, error) {
	start, err := time.ParseInLocation(DateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, apierr.Invalid("start_date must be YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(DateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, apierr.Invalid("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apierr.Invalid("end_date must be on or after start_date")
	}

	id, err := s.id.New()
	if err != nil {
		return nil, err
	}

	l := &LeaveRequest{
		LeaveID:    id,
		EmployeeID: employeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     StatusPending,
		CreatedAt:  s.clock.Now().UTC(),
	}
	if err := s.store.Insert(ctx, l); err != nil {
		return nil, err
	}

	dto := l.toDTO()
	return &dto, nil
}

func (s *Service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	recs, err := s.store.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toDTOs(recs), nil
}

func (s *Service) ListAll(ctx context.Context) ([]LeaveResponse, error) {
	recs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(recs), nil
}

func toDTOs(recs []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toDTO())
	}
	return out
}
