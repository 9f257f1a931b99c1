package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// OperationLogWriter 操作日志存储
type OperationLogWriter interface {
	InsertOperationLog(ctx context.Context, entry *models.OperationLog) error
}

// 需要记录的HTTP方法
var loggedMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// 不需要记录的路径
var excludedPaths = map[string]bool{
	"/api/auth/login": true,
}

const operationLogTimeout = 3 * time.Second

// OperationLoggerMiddleware 记录写操作的审计日志
func OperationLoggerMiddleware(store OperationLogWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldLogOperation(c) {
			c.Next()
			return
		}

		startTime := time.Now()
		requestBody := parseBody(readBody(c), c.GetHeader("Content-Type"))

		c.Next()

		entry := models.OperationLog{
			RequestID:     GetRequestID(c),
			Method:        c.Request.Method,
			Path:          c.Request.URL.Path,
			EnterpriseID:  c.Param("id"),
			RequestBody:   sanitizeData(requestBody),
			StatusCode:    c.Writer.Status(),
			Success:       c.Writer.Status() < http.StatusBadRequest,
			OperationTime: startTime,
			ResponseTime:  time.Since(startTime).Milliseconds(),
			IPAddress:     c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
		}
		entry.OperatorID, entry.OperatorName, entry.OperatorRole = extractUserInfo(c)
		if len(c.Errors) > 0 {
			entry.ErrorMessage = c.Errors.String()
		}

		ctx, cancel := context.WithTimeout(context.Background(), operationLogTimeout)
		defer cancel()
		if err := store.InsertOperationLog(ctx, &entry); err != nil {
			utils.Logger.Error().Err(err).Str("requestId", entry.RequestID).Msg("保存操作日志失败")
			return
		}

		utils.Logger.Debug().
			Str("requestId", entry.RequestID).
			Str("path", entry.Path).
			Int("status", entry.StatusCode).
			Str("operator", entry.OperatorName).
			Msg("操作日志记录完成")
	}
}

// shouldLogOperation 检查是否需要记录此操作
func shouldLogOperation(c *gin.Context) bool {
	if excludedPaths[c.Request.URL.Path] {
		return false
	}
	return loggedMethods[c.Request.Method]
}

// parseBody 尽量按JSON解析请求体
func parseBody(raw []byte, contentType string) interface{} {
	if len(raw) == 0 {
		return nil
	}
	if strings.Contains(contentType, "application/json") {
		var body interface{}
		if err := json.Unmarshal(raw, &body); err == nil {
			return body
		}
	}
	return string(raw)
}

// extractUserInfo 从上下文中提取用户信息
func extractUserInfo(c *gin.Context) (string, string, string) {
	user, err := utils.GetUser(c)
	if err != nil {
		return "anonymous", "匿名用户", "UNKNOWN"
	}
	return user.ID, user.Username, user.Role
}

// sanitizeData 清理数据中的敏感信息
func sanitizeData(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		sanitized := make(map[string]interface{}, len(v))
		for k, val := range v {
			switch strings.ToLower(k) {
			case "password", "token", "authorization", "secret", "key":
				sanitized[k] = "******"
			default:
				sanitized[k] = sanitizeData(val)
			}
		}
		return sanitized
	case []interface{}:
		sanitized := make([]interface{}, len(v))
		for i, val := range v {
			sanitized[i] = sanitizeData(val)
		}
		return sanitized
	default:
		return data
	}
}
