package handler

import (
	"net/http"

	"agency-server/internal/common/httpx"
	"agency-server/internal/dto"
	"agency-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CreateBooking 公开预约表单
func (h *Handler) CreateBooking(c *gin.Context) {
	var req dto.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	booking, err := h.service.CreateBooking(&req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建预约失败")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings 当前客户的全部预约
func (h *Handler) GetMyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	bookings, err := h.service.CustomerBookings(user)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取预约列表失败")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetMyBookingsByStatus 当前客户按状态筛选的预约
func (h *Handler) GetMyBookingsByStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	bookings, err := h.service.CustomerBookingsByStatus(user, c.Param("status"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取预约列表失败")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
