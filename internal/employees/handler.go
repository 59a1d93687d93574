package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"KINTAI-backend/internal/platform/apierr"
	"KINTAI-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

// グループ全体が RequireAuth + RequireRole(ADMIN) 配下に置かれる前提
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("", h.List)
	r.POST("", h.Create)
	r.GET("/:employee_id", h.Get)
	r.PUT("/:employee_id", h.Update)
	r.DELETE("/:employee_id", h.Delete)
}

// GET /users
func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /users/:employee_id
func (h *Handler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /users
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Invalid("invalid json or missing required fields"))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PUT /users/:employee_id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Invalid("invalid json or missing required fields"))
		return
	}

	res, err := h.svc.Update(c.Request.Context(), c.Param("employee_id"), req)
	if err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /users/:employee_id
func (h *Handler) Delete(c *gin.Context) {
	actorID := c.GetString(auth.CtxEmployeeIDKey)
	if err := h.svc.Delete(c.Request.Context(), actorID, c.Param("employee_id")); err != nil {
		c.JSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
