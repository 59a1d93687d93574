package attendance

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"KINTAI-backend/internal/platform/apierr"
	"KINTAI-backend/internal/platform/db"
)

// ===== インターフェース群 =====

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

// ===== Service本体 =====

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

// CheckIn: 当日分の行を探してから書き込むまでを1トランザクションで行う。
// 同日2回目の打刻は CONFLICT（行は増やさない）
func (s *Service) CheckIn(ctx context.Context, employeeID string) error {
	now := s.clock.Now().UTC()
	today := now.Format(DateLayout)

	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)

		rec, err := st.FindByEmployeeAndDate(ctx, employeeID, today)
		if err != nil {
			return err
		}
		if rec != nil && rec.CheckIn != nil {
			return apierr.Conflict("Already checked in today")
		}

		if rec == nil {
			id, err := s.id.New()
			if err != nil {
				return err
			}
			return st.Insert(ctx, &Attendance{
				AttendanceID: id,
				EmployeeID:   employeeID,
				AttendedOn:   today,
				CheckIn:      &now,
				Status:       StatusPresent,
			})
		}
		return st.SetCheckIn(ctx, rec.AttendanceID, now)
	})
}

// CheckOut: check_in が無ければ前提条件違反。退勤済みなら当日は終端状態
func (s *Service) CheckOut(ctx context.Context, employeeID string) error {
	now := s.clock.Now().UTC()
	today := now.Format(DateLayout)

	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)

		rec, err := st.FindByEmployeeAndDate(ctx, employeeID, today)
		if err != nil {
			return err
		}
		if rec == nil || rec.CheckIn == nil {
			return apierr.Conflict("You must check in first")
		}
		if rec.CheckOut != nil {
			return apierr.Conflict("Already checked out today")
		}
		return st.SetCheckOut(ctx, rec.AttendanceID, now)
	})
}

// Today: 読み取り専用。行が無い日は ABSENT のプレースホルダを合成する（書き込まない）
func (s *Service) Today(ctx context.Context, employeeID string) (TodayResponse, error) {
	today := s.clock.Now().UTC().Format(DateLayout)

	rec, err := s.store.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return TodayResponse{}, err
	}
	if rec == nil {
		return TodayResponse{Date: today, Status: StatusAbsent}, nil
	}
	return TodayResponse{
		Date:     rec.AttendedOn,
		CheckIn:  rec.CheckIn,
		CheckOut: rec.CheckOut,
		Status:   rec.Status,
	}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]AdminAttendanceResponse, error) {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	recs, err := s.store.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, apierr.NotFound("No attendance records found")
	}
	out := make([]AttendanceResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toDTO())
	}
	return out, nil
}
