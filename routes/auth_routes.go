package routes

import (
	"github.com/BerniceZTT/mentorship_analytics/controllers"
	"github.com/BerniceZTT/mentorship_analytics/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册认证相关路由
func RegisterAuthRoutes(router *gin.Engine, ctl *controllers.AuthController) {
	authRoutes := router.Group("/api/auth")

	authRoutes.POST("/login", ctl.Login)
	authRoutes.GET("/validate", middleware.AuthMiddleware(), ctl.ValidateToken)
}
