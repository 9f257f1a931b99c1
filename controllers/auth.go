package controllers

import (
	"net/http"

	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/repository"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 登录与令牌校验
type AuthController struct {
	repo repository.AnalyticsRepository
}

// NewAuthController 创建认证控制器
func NewAuthController(repo repository.AnalyticsRepository) *AuthController {
	return &AuthController{repo: repo}
}

// Login 用户登录
func (ctl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.Logger.Info().Str("username", req.Username).Msg("登录尝试")

	user, err := ctl.repo.FindUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("查询用户出错")
		utils.ErrorResponse(c, "登录失败: 数据库错误", http.StatusInternalServerError)
		return
	}
	if user == nil || !utils.VerifyPassword(req.Password, user.Password) {
		utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 用户名或密码错误")
		utils.ErrorResponse(c, "用户名或密码错误", http.StatusUnauthorized)
		return
	}

	switch user.Status {
	case models.UserStatusPENDING:
		utils.ErrorResponse(c, "账户正在审核中，请等待审核通过", http.StatusForbidden)
		return
	case models.UserStatusREJECTED:
		utils.ErrorResponse(c, "账户审核未通过", http.StatusForbidden)
		return
	}

	token, err := utils.GenerateToken(*user)
	if err != nil {
		utils.ErrorResponse(c, "生成令牌失败", http.StatusInternalServerError)
		return
	}

	utils.Logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("登录成功")

	utils.SuccessResponse(c, models.LoginResponse{Token: token, User: *user}, "登录成功")
}

// ValidateToken 校验令牌并返回当前用户
func (ctl *AuthController) ValidateToken(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"user": user}, "")
}
