package leaves

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"KINTAI-backend/internal/platform/apierr"
	"KINTAI-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service, admin gin.HandlerFunc) {
	h := &Handler{svc: svc}

	r.POST("", h.Submit)
	r.GET("", h.ListMine)
	r.GET("/all", admin, h.ListAll)
}

// POST /leaves
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Invalid("invalid json or missing required fields"))
		return
	}

	employeeID := c.GetString(auth.CtxEmployeeIDKey)
	res, err := h.svc.Submit(c.Request.Context(), employeeID, req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /leaves
func (h *Handler) ListMine(c *gin.Context) {
	employeeID := c.GetString(auth.CtxEmployeeIDKey)
	res, err := h.svc.ListMine(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /leaves/all
func (h *Handler) ListAll(c *gin.Context) {
	res, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
