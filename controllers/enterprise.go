package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/analytics"
	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/repository"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// maxMetricBatch 单次录入的最大条数
const maxMetricBatch = 500

// EnterpriseController 企业及其数据录入
type EnterpriseController struct {
	repo repository.AnalyticsRepository
}

// NewEnterpriseController 创建企业控制器
func NewEnterpriseController(repo repository.AnalyticsRepository) *EnterpriseController {
	return &EnterpriseController{repo: repo}
}

// ListEnterprises 企业列表，支持按名称关键字筛选
func (ctl *EnterpriseController) ListEnterprises(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	enterprises, err := ctl.repo.ListEnterprises(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if user.Role == string(models.UserRoleENTREPRENEUR) {
		own := make([]models.Enterprise, 0, 1)
		for _, e := range enterprises {
			if e.ID.Hex() == user.EnterpriseID {
				own = append(own, e)
			}
		}
		enterprises = own
	}

	utils.SuccessResponse(c, gin.H{
		"enterprises": enterprises,
		"total":       len(enterprises),
	}, "")
}

// CreateEnterprise 创建企业，创建人作为导师
func (ctl *EnterpriseController) CreateEnterprise(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.EnterpriseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求参数: "+err.Error()))
		return
	}

	now := time.Now()
	enterprise := models.Enterprise{
		Name:       req.Name,
		Sector:     req.Sector,
		Region:     req.Region,
		CohortYear: req.CohortYear,
		MentorID:   user.ID,
		MentorName: user.Username,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := ctl.repo.CreateEnterprise(c.Request.Context(), &enterprise); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Logger.Info().
		Str("enterpriseId", enterprise.ID.Hex()).
		Str("name", enterprise.Name).
		Str("operator", user.Username).
		Msg("企业已创建")

	utils.SuccessResponse(c, enterprise, "企业创建成功", http.StatusCreated)
}

// GetEnterprise 企业详情
func (ctl *EnterpriseController) GetEnterprise(c *gin.Context) {
	enterprise, _, ok := ctl.accessibleEnterprise(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, enterprise, "")
}

// AddMetrics 录入指标数据，请求体可以是单条记录或数组
func (ctl *EnterpriseController) AddMetrics(c *gin.Context) {
	enterprise, user, ok := ctl.accessibleEnterprise(c)
	if !ok {
		return
	}

	requests, err := decodeMetricRequests(c.Request.Body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	records := make([]models.MetricRecord, 0, len(requests))
	for i, req := range requests {
		date, err := validateMetricRequest(req)
		if err != nil {
			utils.HandleError(c, utils.CreateBadRequestError(fmt.Sprintf("第%d条记录: %s", i+1, err.Error())))
			return
		}
		records = append(records, models.MetricRecord{
			EnterpriseID: enterprise.ID.Hex(),
			Metric:       req.Metric,
			Date:         date,
			Value:        req.Value,
			CreatedBy:    user.ID,
			CreatedAt:    now,
		})
	}

	if err := ctl.repo.InsertMetricRecords(c.Request.Context(), records); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"inserted": len(records)}, "指标录入成功", http.StatusCreated)
}

// AddAssessment 录入一条自评
func (ctl *EnterpriseController) AddAssessment(c *gin.Context) {
	enterprise, user, ok := ctl.accessibleEnterprise(c)
	if !ok {
		return
	}

	var req models.SelfAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求参数: "+err.Error()))
		return
	}
	if req.Score == nil {
		utils.HandleError(c, utils.CreateBadRequestError("缺少评分"))
		return
	}

	assessment := models.SelfAssessment{
		EnterpriseID:   enterprise.ID.Hex(),
		EnterpriseName: enterprise.Name,
		Category:       req.Category,
		Score:          req.Score,
		AssessedAt:     time.Now(),
		CreatedBy:      user.ID,
	}
	if err := ctl.repo.InsertSelfAssessment(c.Request.Context(), &assessment); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, assessment, "自评录入成功", http.StatusCreated)
}

// accessibleEnterprise 加载路径中的企业并检查访问权限
func (ctl *EnterpriseController) accessibleEnterprise(c *gin.Context) (*models.Enterprise, *utils.LoginUser, bool) {
	user, ok := currentUser(c)
	if !ok {
		return nil, nil, false
	}

	id := c.Param("id")
	if err := checkEnterpriseAccess(user, id); err != nil {
		utils.HandleError(c, err)
		return nil, nil, false
	}

	enterprise, err := ctl.repo.FindEnterprise(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return nil, nil, false
	}
	return enterprise, user, true
}

// decodeMetricRequests 解析单条或数组形式的请求体
func decodeMetricRequests(body io.Reader) ([]models.MetricRecordRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, utils.CreateBadRequestError("读取请求体失败")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, utils.CreateBadRequestError("请求体为空")
	}

	var requests []models.MetricRecordRequest
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &requests); err != nil {
			return nil, utils.CreateBadRequestError("无效的请求参数: " + err.Error())
		}
	} else {
		var single models.MetricRecordRequest
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, utils.CreateBadRequestError("无效的请求参数: " + err.Error())
		}
		requests = append(requests, single)
	}

	if len(requests) == 0 {
		return nil, utils.CreateBadRequestError("没有可录入的记录")
	}
	if len(requests) > maxMetricBatch {
		return nil, utils.CreateBadRequestError(fmt.Sprintf("单次最多录入%d条记录", maxMetricBatch))
	}
	return requests, nil
}

// validateMetricRequest 校验指标名称和日期，返回解析后的日期
func validateMetricRequest(req models.MetricRecordRequest) (time.Time, error) {
	if !models.ValidMetrics[req.Metric] {
		return time.Time{}, utils.CreateBadRequestError("不支持的指标: " + string(req.Metric))
	}
	if req.Value == nil {
		return time.Time{}, utils.CreateBadRequestError("缺少数值")
	}
	date, ok := analytics.ParseDate(req.Date)
	if !ok {
		return time.Time{}, utils.CreateBadRequestError("无效的日期")
	}
	return date, nil
}
