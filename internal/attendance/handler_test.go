package attendance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"KINTAI-backend/internal/platform/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 認証ミドルウェアの代わりに主体を直接詰めるスタブ
func stubPrincipal(employeeID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.CtxEmployeeIDKey, employeeID)
		c.Set(auth.CtxRoleKey, role)
		c.Next()
	}
}

func newAttendanceAPI(svc *Service, employeeID, role string) *gin.Engine {
	r := gin.New()
	grp := r.Group("/api/attendance", stubPrincipal(employeeID, role))
	RegisterRoutes(grp, svc, auth.RequireRole(auth.RoleAdmin))
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// 登録→出勤→二重出勤400→退勤→二重退勤400→当日照会 の一連の流れ
func TestCheckInOutScenario(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)
	r := newAttendanceAPI(svc, testEmployee, "EMPLOYEE")

	checkIn := testNow
	checkOut := testNow.Add(time.Minute)

	// 1. 出勤
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT attendance_id, employee_id, DATE_FORMAT").
		WithArgs(testEmployee, testDay).
		WillReturnRows(findRows())
	mock.ExpectExec("INSERT INTO attendances").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	ast.Equal(http.StatusOK, do(r, http.MethodPost, "/api/attendance/check-in").Code)

	// 2. 即座の二重出勤 → 400
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT attendance_id, employee_id, DATE_FORMAT").
		WithArgs(testEmployee, testDay).
		WillReturnRows(findRows().AddRow(testULID, testEmployee, testDay, checkIn, nil, "PRESENT"))
	mock.ExpectRollback()
	ast.Equal(http.StatusBadRequest, do(r, http.MethodPost, "/api/attendance/check-in").Code)

	// 3. 退勤
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT attendance_id, employee_id, DATE_FORMAT").
		WithArgs(testEmployee, testDay).
		WillReturnRows(findRows().AddRow(testULID, testEmployee, testDay, checkIn, nil, "PRESENT"))
	mock.ExpectExec("UPDATE attendances SET check_out").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	ast.Equal(http.StatusOK, do(r, http.MethodPost, "/api/attendance/check-out").Code)

	// 4. 二重退勤 → 400
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT attendance_id, employee_id, DATE_FORMAT").
		WithArgs(testEmployee, testDay).
		WillReturnRows(findRows().AddRow(testULID, testEmployee, testDay, checkIn, checkOut, "PRESENT"))
	mock.ExpectRollback()
	ast.Equal(http.StatusBadRequest, do(r, http.MethodPost, "/api/attendance/check-out").Code)

	// 5. 当日照会は両打刻と PRESENT を返す
	mock.ExpectQuery("SELECT attendance_id, employee_id, DATE_FORMAT").
		WithArgs(testEmployee, testDay).
		WillReturnRows(findRows().AddRow(testULID, testEmployee, testDay, checkIn, checkOut, "PRESENT"))

	w := do(r, http.MethodGet, "/api/attendance/today")
	ast.Equal(http.StatusOK, w.Code)

	var res TodayResponse
	ast.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	ast.Equal(testDay, res.Date)
	ast.Equal(StatusPresent, res.Status)
	ast.NotNil(res.CheckIn)
	ast.NotNil(res.CheckOut)

	ast.NoError(mock.ExpectationsWereMet())
}

func TestAdminRoutesForbiddenForEmployee(t *testing.T) {
	ast := assert.New(t)
	svc, _ := newTestService(t)
	r := newAttendanceAPI(svc, testEmployee, "EMPLOYEE")

	ast.Equal(http.StatusForbidden, do(r, http.MethodGet, "/api/attendance/all").Code)
	ast.Equal(http.StatusForbidden, do(r, http.MethodGet, "/api/attendance/employee/b@x.com").Code)
	ast.Equal(http.StatusForbidden, do(r, http.MethodGet, "/api/attendance/export.csv").Code)
}

func TestListAllAdmin(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)
	r := newAttendanceAPI(svc, "admin@x.com", "ADMIN")

	mock.ExpectQuery("SELECT a.employee_id, e.full_name, e.department, DATE_FORMAT").
		WillReturnRows(joinedRows().
			AddRow(testEmployee, "Alice Tanaka", "Engineering", testDay, testNow, nil, "PRESENT"))

	w := do(r, http.MethodGet, "/api/attendance/all")
	ast.Equal(http.StatusOK, w.Code)

	var res []AdminAttendanceResponse
	ast.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	ast.Len(res, 1)
	ast.Equal("Alice Tanaka", res[0].Name)
	ast.Equal(testDay, res[0].Date)
}

func TestListByEmployeeAdmin404(t *testing.T) {
	ast := assert.New(t)
	svc, mock := newTestService(t)
	r := newAttendanceAPI(svc, "admin@x.com", "ADMIN")

	mock.ExpectQuery("SELECT attendance_id, employee_id, DATE_FORMAT").
		WithArgs("nobody@x.com").
		WillReturnRows(findRows())

	ast.Equal(http.StatusNotFound, do(r, http.MethodGet, "/api/attendance/employee/nobody@x.com").Code)
}
