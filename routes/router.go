package routes

import (
	"github.com/BerniceZTT/mentorship_analytics/controllers"
	"github.com/BerniceZTT/mentorship_analytics/repository"
	"github.com/BerniceZTT/mentorship_analytics/service"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// DatabaseStatusFunc 数据库状态查询
type DatabaseStatusFunc func() (map[string]interface{}, error)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, repo repository.AnalyticsRepository, dbStatus DatabaseStatusFunc) {
	RegisterAuthRoutes(router, controllers.NewAuthController(repo))
	RegisterEnterpriseRoutes(router, controllers.NewEnterpriseController(repo))
	RegisterAnalyticsRoutes(router, controllers.NewAnalyticsController(service.NewAnalyticsService(repo)))

	// 健康检查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 数据库状态检查路由
	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := dbStatus()
		if err != nil {
			utils.LogError(err, nil, "获取数据库状态失败")
			utils.ErrorResponse(c, "获取数据库状态失败", 500)
			return
		}
		c.JSON(200, status)
	})
}
