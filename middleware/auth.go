package middleware

import (
	"net/http"
	"strings"

	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

func abortUnauthorized(c *gin.Context, message, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

// AuthMiddleware 认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		utils.Logger.Debug().
			Str("requestId", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Str("authorization", getShortAuthHeader(authHeader)).
			Msg("验证请求")

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "未授权访问", "MISSING_TOKEN")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, "未授权访问", "MISSING_TOKEN")
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Logger.Warn().Err(err).Str("requestId", GetRequestID(c)).Msg("Token验证失败")
			abortUnauthorized(c, "无效的token: "+err.Error(), "INVALID_TOKEN")
			return
		}

		username, okName := claims["username"].(string)
		role, okRole := claims["role"].(string)
		if _, okID := claims["id"].(string); !okID || !okName || !okRole {
			utils.Logger.Warn().Interface("claims", claims).Msg("Token负载缺少必要字段")
			abortUnauthorized(c, "Token缺少必要字段", "INVALID_TOKEN")
			return
		}

		c.Set("user", claims)

		utils.Logger.Debug().
			Str("username", username).
			Str("role", role).
			Msg("验证成功")

		c.Next()
	}
}

// PermissionMiddleware 检查当前用户是否拥有资源操作权限
func PermissionMiddleware(resource string, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUser(c)
		if err != nil {
			abortUnauthorized(c, "用户未认证", "UNAUTHENTICATED")
			return
		}

		role := models.UserRole(user.Role)
		if !utils.HasPermission(role, resource, action) {
			utils.Logger.Info().
				Str("username", user.Username).
				Str("role", user.Role).
				Str("resource", resource).
				Str("action", action).
				Msg("权限不足")

			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "权限不足",
				"code":    "INSUFFICIENT_PERMISSION",
			})
			return
		}

		c.Next()
	}
}

// getShortAuthHeader 获取截断的授权头，保护敏感信息
func getShortAuthHeader(header string) string {
	if len(header) > 15 {
		return header[:15] + "..."
	}
	return header
}
