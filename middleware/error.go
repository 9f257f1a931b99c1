package middleware

import (
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 将处理函数通过 c.Error 上报的错误转换为统一响应
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		utils.HandleError(c, c.Errors.Last().Err)
	}
}
