package controllers

import (
	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

// currentUser 获取当前登录用户，失败时直接写入401响应
func currentUser(c *gin.Context) (*utils.LoginUser, bool) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, utils.CreateUnauthorizedError())
		return nil, false
	}
	return user, true
}

// checkEnterpriseAccess 企业负责人只能访问自己的企业
func checkEnterpriseAccess(user *utils.LoginUser, enterpriseID string) error {
	if user.Role == string(models.UserRoleENTREPRENEUR) && user.EnterpriseID != enterpriseID {
		return utils.CreateForbiddenError()
	}
	return nil
}
