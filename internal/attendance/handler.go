package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"KINTAI-backend/internal/platform/apierr"
	"KINTAI-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

// admin は RequireRole(ADMIN) 相当のミドルウェア。
// グループ全体は main 側で RequireAuth 配下に置かれる前提
func RegisterRoutes(r gin.IRoutes, svc *Service, admin gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.POST("/check-in", h.CheckIn)
	r.POST("/check-out", h.CheckOut)
	r.GET("/today", h.Today)

	r.GET("/all", admin, h.ListAll)
	r.GET("/employee/:employee_id", admin, h.ListByEmployee)
	r.GET("/export.csv", admin, h.ExportCSV)
}

// POST /attendance/check-in
func (h *Handler) CheckIn(c *gin.Context) {
	employeeID := c.GetString(auth.CtxEmployeeIDKey)
	if err := h.svc.CheckIn(c.Request.Context(), employeeID); err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked in successfully"})
}

// POST /attendance/check-out
func (h *Handler) CheckOut(c *gin.Context) {
	employeeID := c.GetString(auth.CtxEmployeeIDKey)
	if err := h.svc.CheckOut(c.Request.Context(), employeeID); err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked out successfully"})
}

// GET /attendance/today
func (h *Handler) Today(c *gin.Context) {
	employeeID := c.GetString(auth.CtxEmployeeIDKey)
	res, err := h.svc.Today(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /attendance/all
func (h *Handler) ListAll(c *gin.Context) {
	res, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /attendance/employee/:employee_id
func (h *Handler) ListByEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")
	res, err := h.svc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /attendance/export.csv
func (h *Handler) ExportCSV(c *gin.Context) {
	data, err := h.svc.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="attendance.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=Shift_JIS", data)
}
