package routes

import (
	"github.com/BerniceZTT/mentorship_analytics/controllers"
	"github.com/BerniceZTT/mentorship_analytics/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterEnterpriseRoutes 注册企业及数据录入路由
func RegisterEnterpriseRoutes(router *gin.Engine, ctl *controllers.EnterpriseController) {
	enterpriseRoutes := router.Group("/api/enterprises")
	enterpriseRoutes.Use(middleware.AuthMiddleware())

	enterpriseRoutes.GET("", middleware.PermissionMiddleware("enterprises", "read"), ctl.ListEnterprises)
	enterpriseRoutes.POST("", middleware.PermissionMiddleware("enterprises", "create"), ctl.CreateEnterprise)
	enterpriseRoutes.GET("/:id", middleware.PermissionMiddleware("enterprises", "read"), ctl.GetEnterprise)
	enterpriseRoutes.POST("/:id/metrics", middleware.PermissionMiddleware("metrics", "create"), ctl.AddMetrics)
	enterpriseRoutes.POST("/:id/assessments", middleware.PermissionMiddleware("metrics", "create"), ctl.AddAssessment)
}
