package admin

import (
	"net/http"

	"agency-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// UpdateHomepageContent 整体替换首页内容
func (h *Handler) UpdateHomepageContent(c *gin.Context) {
	h.updateSetting(c, consts.SettingHomepageContent, "首页内容已更新")
}

// UpdateTimeSlots 整体替换可预约时间段
func (h *Handler) UpdateTimeSlots(c *gin.Context) {
	h.updateSetting(c, consts.SettingTimeSlots, "预约时间段已更新")
}

func (h *Handler) updateSetting(c *gin.Context, key string, message string) {
	var req struct {
		Value map[string]interface{} `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	setting, err := h.service.UpdateSetting(key, req.Value)
	if err != nil {
		writeServiceError(c, err, "保存设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "value": setting.Value})
}
