package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetCalendarToday 今日已确认预订
func (h *Handler) GetCalendarToday(c *gin.Context) {
	bookings, err := h.service.CalendarToday()
	if err != nil {
		writeServiceError(c, err, "获取今日日程失败")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetCalendarUpcoming 未来 N 天的已确认预订，按日期升序
func (h *Handler) GetCalendarUpcoming(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的天数"})
		return
	}

	bookings, err := h.service.CalendarUpcoming(days)
	if err != nil {
		writeServiceError(c, err, "获取日程失败")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetPendingNotifications 待通知的预订
func (h *Handler) GetPendingNotifications(c *gin.Context) {
	count, bookings, err := h.service.PendingNotifications()
	if err != nil {
		writeServiceError(c, err, "获取待通知预订失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    count,
		"bookings": bookings,
	})
}
