package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// bodyLogWriter 用于记录响应内容
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 实现 ResponseWriter 接口
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// readBody 读取请求体并放回，便于后续处理
func readBody(c *gin.Context) []byte {
	if c.Request.Body == nil {
		return nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.Logger.Warn().Err(err).Msg("读取请求体失败")
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}

// captureResponse 替换响应写入器以捕获响应体
func captureResponse(c *gin.Context) *bodyLogWriter {
	if blw, ok := c.Writer.(*bodyLogWriter); ok {
		return blw
	}
	blw := &bodyLogWriter{
		ResponseWriter: c.Writer,
		body:           bytes.NewBufferString(""),
	}
	c.Writer = blw
	return blw
}

// Logger 请求日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		headers := make(map[string]string)
		for k, v := range c.Request.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		utils.LogApiRequest(utils.ApiRequestLog{
			RequestID: requestID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     c.Request.URL.Query(),
			Body:      string(readBody(c)),
			Headers:   headers,
		})

		blw := captureResponse(c)

		c.Next()

		utils.LogApiResponse(
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			blw.body.String(),
		)
	}
}

// Recovery 恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("requestId", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("服务崩溃")

		c.AbortWithStatusJSON(500, gin.H{
			"success": false,
			"error":   "服务器内部错误",
			"code":    "INTERNAL_ERROR",
		})
	})
}
