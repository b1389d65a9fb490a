package handler

import (
	"net/http"

	"agency-server/internal/common/httpx"
	"agency-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// GetGallery 公开图库列表
func (h *Handler) GetGallery(c *gin.Context) {
	images, err := h.service.ListGallery()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图库失败")
		return
	}

	c.JSON(http.StatusOK, images)
}

// GetHomepageContent 前台展示用的首页内容，首次访问时写入默认值
func (h *Handler) GetHomepageContent(c *gin.Context) {
	setting, err := h.service.GetSettingWithDefault(consts.SettingHomepageContent)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取首页内容失败")
		return
	}

	c.JSON(http.StatusOK, setting.Value)
}

// GetTimeSlots 可预约时间段，首次访问时写入默认值
func (h *Handler) GetTimeSlots(c *gin.Context) {
	setting, err := h.service.GetSettingWithDefault(consts.SettingTimeSlots)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取可预约时间失败")
		return
	}

	c.JSON(http.StatusOK, setting.Value)
}
