package attendance

import "time"

const DateLayout = "2006-01-02"

// GET /attendance/today
type TodayResponse struct {
	Date     string     `json:"date"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Status   Status     `json:"status"`
}

// GET /attendance/employee/:employee_id
type AttendanceResponse struct {
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     Status     `json:"status"`
}

// GET /attendance/all
type AdminAttendanceResponse struct {
	EmployeeID string     `json:"employee_id"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     Status     `json:"status"`
}
