package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError 自定义API错误
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error 实现error接口
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError 创建API错误
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError 创建资源不存在错误
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+"不存在", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError 创建未授权错误
func CreateUnauthorizedError() *ApiError {
	return NewApiError("未授权访问", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateForbiddenError 创建权限不足错误
func CreateForbiddenError() *ApiError {
	return NewApiError("权限不足", http.StatusForbidden, "FORBIDDEN")
}

// CreateBadRequestError 创建错误请求错误
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// internalErrorMessage 未预期错误返回给客户端的统一提示，详情只写日志
const internalErrorMessage = "服务器内部错误"

// HandleError 将错误转换为统一响应。
// ApiError 按自身状态码返回；其他错误记录日志后返回 500 和统一提示。
func HandleError(c *gin.Context, err error) {
	if c == nil || err == nil {
		return
	}
	logCtx := map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}

	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		LogError(err, logCtx, "未预期的错误")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   internalErrorMessage,
			"code":    "INTERNAL_ERROR",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		LogError(err, logCtx, "API错误")
	} else {
		Logger.Warn().Interface("context", logCtx).Str("code", apiErr.ErrorCode).Msg("请求失败: " + apiErr.Message)
	}

	response := gin.H{"success": false, "error": apiErr.Message}
	if apiErr.ErrorCode != "" {
		response["code"] = apiErr.ErrorCode
	}
	c.JSON(apiErr.StatusCode, response)
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
