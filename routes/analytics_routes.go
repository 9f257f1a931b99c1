package routes

import (
	"github.com/BerniceZTT/mentorship_analytics/controllers"
	"github.com/BerniceZTT/mentorship_analytics/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAnalyticsRoutes 注册看板图表路由
func RegisterAnalyticsRoutes(router *gin.Engine, ctl *controllers.AnalyticsController) {
	analyticsRoutes := router.Group("/api/analytics")
	analyticsRoutes.Use(middleware.AuthMiddleware(), middleware.PermissionMiddleware("analytics", "read"))

	enterpriseCharts := analyticsRoutes.Group("/enterprises/:id")
	enterpriseCharts.GET("/cash-flow", ctl.CashFlow())
	enterpriseCharts.GET("/revenue-expenses", ctl.RevenueExpenses())
	enterpriseCharts.GET("/equity", ctl.Equity())
	enterpriseCharts.GET("/improvement-scores", ctl.ImprovementScores())
	enterpriseCharts.GET("/report", ctl.Report)

	analyticsRoutes.GET("/heatmap", ctl.HeatMap)
	analyticsRoutes.GET("/compare", ctl.Compare)
	analyticsRoutes.GET("/leaderboard", ctl.Leaderboard)
}
