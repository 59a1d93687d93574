package attendance

import "time"

type Status string

const (
	StatusAbsent  Status = "ABSENT"
	StatusPresent Status = "PRESENT"
)

// DB行に対応（スキャン用）
type attendanceRow struct {
	AttendanceID string
	EmployeeID   string
	AttendedOn   string // DATE → "YYYY-MM-DD"
	CheckIn      *time.Time
	CheckOut     *time.Time
	Status       string
}

// (employee_id, attended_on) ごとに高々1行。
// check_in だけ埋まった行が「出勤中」、両方埋まれば当日は確定
type Attendance struct {
	AttendanceID string
	EmployeeID   string
	AttendedOn   string
	CheckIn      *time.Time
	CheckOut     *time.Time
	Status       Status
}

func (r attendanceRow) toModel() Attendance {
	return Attendance{
		AttendanceID: r.AttendanceID,
		EmployeeID:   r.EmployeeID,
		AttendedOn:   r.AttendedOn,
		CheckIn:      utcOrNil(r.CheckIn),
		CheckOut:     utcOrNil(r.CheckOut),
		Status:       Status(r.Status),
	}
}

func (a Attendance) toDTO() AttendanceResponse {
	return AttendanceResponse{
		EmployeeID: a.EmployeeID,
		Date:       a.AttendedOn,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
	}
}

// employees とのJOIN結果（管理者向け一覧）
type joinedRow struct {
	EmployeeID string
	FullName   string
	Department string
	AttendedOn string
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string
}

func (r joinedRow) toDTO() AdminAttendanceResponse {
	return AdminAttendanceResponse{
		EmployeeID: r.EmployeeID,
		Name:       r.FullName,
		Department: r.Department,
		Date:       r.AttendedOn,
		CheckIn:    utcOrNil(r.CheckIn),
		CheckOut:   utcOrNil(r.CheckOut),
		Status:     Status(r.Status),
	}
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
