package handler

import (
	"net/http"

	"agency-server/internal/common/httpx"
	"agency-server/internal/dto"
	"agency-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GetProfile 当前登录客户信息
func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile 客户自助更新资料，仅允许受限字段
func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	var patch dto.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	updated, err := h.service.UpdateProfile(user, &patch)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新资料失败")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ChangePassword 客户修改自己的密码
func (h *Handler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.service.ChangePassword(user, req.OldPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "修改密码失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}
