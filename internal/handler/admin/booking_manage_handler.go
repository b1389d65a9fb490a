package admin

import (
	"net/http"
	"strconv"

	"agency-server/internal/dto"
	"agency-server/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetBookings 预订列表，支持按状态与客户筛选
func (h *Handler) GetBookings(c *gin.Context) {
	filter := repository.BookingFilter{Status: c.Query("status")}
	if raw := c.Query("user_id"); raw != "" {
		uid, err := strconv.Atoi(raw)
		if err != nil || uid < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
			return
		}
		id := uint(uid)
		filter.UserID = &id
	}

	bookings, err := h.service.ListBookings(filter)
	if err != nil {
		writeServiceError(c, err, "获取预订列表失败")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetPendingBookings 待处理预订
func (h *Handler) GetPendingBookings(c *gin.Context) {
	bookings, err := h.service.ListPendingBookings()
	if err != nil {
		writeServiceError(c, err, "获取待处理预订失败")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingDetail 获取指定预订
func (h *Handler) GetBookingDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的预订ID"})
		return
	}

	booking, err := h.service.GetBooking(id)
	if err != nil {
		writeServiceError(c, err, "获取预订失败")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ConfirmBooking 处理预订：确认、拒绝或完成，一次性落库
func (h *Handler) ConfirmBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的预订ID"})
		return
	}

	var req dto.BookingConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	booking, err := h.service.ConfirmBooking(id, &req)
	if err != nil {
		writeServiceError(c, err, "处理预订失败")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking 按字段修改预订
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的预订ID"})
		return
	}

	var patch dto.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	booking, err := h.service.UpdateBooking(id, &patch)
	if err != nil {
		writeServiceError(c, err, "更新预订失败")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking 删除预订
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的预订ID"})
		return
	}

	if err := h.service.DeleteBooking(id); err != nil {
		writeServiceError(c, err, "删除预订失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
