package admin

import (
	"net/http"

	"agency-server/internal/dto"

	"github.com/gin-gonic/gin"
)

// GetUserList 获取全部客户
func (h *Handler) GetUserList(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		writeServiceError(c, err, "获取用户列表失败")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserDetail 获取指定客户信息
func (h *Handler) GetUserDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		writeServiceError(c, err, "获取用户失败")
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser 管理端直接创建已激活客户
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.AdminCreateUser(&req)
	if err != nil {
		writeServiceError(c, err, "创建用户失败")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser 按字段修改客户信息
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var patch dto.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.AdminUpdateUser(id, &patch)
	if err != nil {
		writeServiceError(c, err, "更新用户失败")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ToggleLicense 激活或停用客户账号
func (h *Handler) ToggleLicense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var req dto.ToggleLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LicenseActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.ToggleLicense(id, *req.LicenseActive)
	if err != nil {
		writeServiceError(c, err, "更新账号状态失败")
		return
	}

	c.JSON(http.StatusOK, user)
}

// SetPassword 管理端重置客户密码
func (h *Handler) SetPassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if _, err := h.service.AdminSetPassword(id, req.Password); err != nil {
		writeServiceError(c, err, "设置密码失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码设置成功"})
}

// DeleteUser 删除客户及其全部文档
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		writeServiceError(c, err, "删除用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
