package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats 控制台概览统计
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats()
	if err != nil {
		writeServiceError(c, err, "统计数据失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentActivity 最近的预订与注册
func (h *Handler) GetRecentActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	activity, err := h.service.RecentActivity(limit)
	if err != nil {
		writeServiceError(c, err, "获取最近动态失败")
		return
	}

	c.JSON(http.StatusOK, activity)
}
