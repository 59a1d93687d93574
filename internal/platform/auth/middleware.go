package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"KINTAI-backend/internal/platform/apierr"
)

const (
	CtxEmployeeIDKey = "employee_id"
	CtxRoleKey       = "role"
	CtxAccountKey    = "account"
)

// RequireAuth: Authorization: Bearer <token> を検証し、subject を
// DBで引き直してから context にアカウントを詰める
func RequireAuth(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierr.Unauthorized("missing Authorization header"))
			return
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierr.Unauthorized("invalid Authorization header"))
			return
		}

		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierr.Unauthorized("empty token"))
			return
		}

		acct, err := svc.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(apierr.ToHTTPStatus(err), apierr.FromErr(err))
			return
		}

		c.Set(CtxEmployeeIDKey, acct.EmployeeID)
		c.Set(CtxRoleKey, string(acct.Role))
		c.Set(CtxAccountKey, acct)
		c.Next()
	}
}

// RequireRole: RequireAuth の後段に重ねて使う（管理系ルートの制限など）
func RequireRole(roles ...Role) gin.HandlerFunc {
	roleSet := make(map[Role]struct{})
	for _, r := range roles {
		if r == "" {
			continue
		}
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		v, ok := c.Get(CtxRoleKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierr.Forbidden("missing role"))
			return
		}

		role, ok := v.(string)
		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, apierr.Forbidden("invalid role"))
			return
		}

		if _, allowed := roleSet[Role(role)]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, apierr.Forbidden("Admin access required"))
			return
		}

		c.Next()
	}
}

// CurrentAccount: RequireAuth 済みハンドラ用のヘルパ
func CurrentAccount(c *gin.Context) *Account {
	v, ok := c.Get(CtxAccountKey)
	if !ok {
		return nil
	}
	acct, _ := v.(*Account)
	return acct
}
