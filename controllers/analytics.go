package controllers

import (
	"context"

	"github.com/BerniceZTT/mentorship_analytics/analytics"
	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/service"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsController 看板图表接口
type AnalyticsController struct {
	svc *service.AnalyticsService
}

// NewAnalyticsController 创建看板控制器
func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{svc: svc}
}

type chartLoader func(ctx context.Context, enterpriseID string) (*models.TimeSeriesChart, error)

// enterpriseChart 企业季度图表的通用处理
func (ctl *AnalyticsController) enterpriseChart(load chartLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		id := c.Param("id")
		if err := checkEnterpriseAccess(user, id); err != nil {
			utils.HandleError(c, err)
			return
		}

		chart, err := load(c.Request.Context(), id)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.SuccessResponse(c, chart, "")
	}
}

// CashFlow 现金流入/流出
func (ctl *AnalyticsController) CashFlow() gin.HandlerFunc {
	return ctl.enterpriseChart(ctl.svc.CashFlow)
}

// RevenueExpenses 收入/支出
func (ctl *AnalyticsController) RevenueExpenses() gin.HandlerFunc {
	return ctl.enterpriseChart(ctl.svc.RevenueExpenses)
}

// Equity 权益
func (ctl *AnalyticsController) Equity() gin.HandlerFunc {
	return ctl.enterpriseChart(ctl.svc.Equity)
}

// ImprovementScores 改进得分
func (ctl *AnalyticsController) ImprovementScores() gin.HandlerFunc {
	return ctl.enterpriseChart(ctl.svc.ImprovementScores)
}

// Report 企业报告数据包
func (ctl *AnalyticsController) Report(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := checkEnterpriseAccess(user, id); err != nil {
		utils.HandleError(c, err)
		return
	}

	report, err := ctl.svc.Report(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, report, "")
}

// HeatMap 自评热力图
func (ctl *AnalyticsController) HeatMap(c *gin.Context) {
	res, err := ctl.svc.HeatMap(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, res, "")
}

// Compare 两个企业的雷达图对比
func (ctl *AnalyticsController) Compare(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	primary, secondary := c.Query("primary"), c.Query("secondary")
	// 企业负责人只能拿自己的企业与其他企业对比
	if user.Role == string(models.UserRoleENTREPRENEUR) &&
		(user.EnterpriseID == "" || (primary != user.EnterpriseID && secondary != user.EnterpriseID)) {
		utils.HandleError(c, utils.CreateForbiddenError())
		return
	}

	res, err := ctl.svc.CompareEnterprises(c.Request.Context(), primary, secondary)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, res, "")
}

// Leaderboard 改进得分排行榜
func (ctl *AnalyticsController) Leaderboard(c *gin.Context) {
	page, limit := utils.GetPagination(c, analytics.DefaultPageSize)

	res, err := ctl.svc.Leaderboard(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, res, "")
}
