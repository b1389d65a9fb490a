package router

import (
	adminhandler "agency-server/internal/handler/admin"
	"agency-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerAdminRoutes 挂载管理端路由。
// 沿用上游部署形态：管理端接口不做登录校验，由外层网络隔离保护。
func registerAdminRoutes(api *gin.RouterGroup, h *adminhandler.Handler) {
	adminGroup := api.Group("/admin")

	adminGroup.GET("/users", h.GetUserList)
	adminGroup.POST("/users", h.CreateUser)
	adminGroup.GET("/users/:id", h.GetUserDetail)
	adminGroup.PUT("/users/:id", h.UpdateUser)
	adminGroup.DELETE("/users/:id", h.DeleteUser)
	adminGroup.POST("/users/:id/toggle-license", h.ToggleLicense)
	adminGroup.POST("/users/:id/set-password", h.SetPassword)

	adminGroup.GET("/documents/user/:id", h.GetUserDocuments)
	adminGroup.POST("/documents/upload/:id", middleware.UploadBodyLimitMiddleware(), h.UploadUserDocument)
	adminGroup.GET("/documents/view/:id", h.ViewDocument)

	adminGroup.GET("/bookings", h.GetBookings)
	adminGroup.GET("/bookings/pending", h.GetPendingBookings)
	adminGroup.GET("/bookings/:id", h.GetBookingDetail)
	adminGroup.POST("/bookings/:id/confirm", h.ConfirmBooking)
	adminGroup.PUT("/bookings/:id", h.UpdateBooking)
	adminGroup.DELETE("/bookings/:id", h.DeleteBooking)

	adminGroup.POST("/gallery/upload", middleware.UploadBodyLimitMiddleware(), h.UploadGalleryImage)
	adminGroup.DELETE("/gallery/:id", h.DeleteGalleryImage)

	adminGroup.PUT("/settings/homepage", h.UpdateHomepageContent)
	adminGroup.PUT("/settings/time-slots", h.UpdateTimeSlots)

	adminGroup.GET("/calendar/today", h.GetCalendarToday)
	adminGroup.GET("/calendar/upcoming", h.GetCalendarUpcoming)
	adminGroup.GET("/calendar/notifications/pending", h.GetPendingNotifications)

	adminGroup.GET("/dashboard/stats", h.GetDashboardStats)
	adminGroup.GET("/dashboard/recent-activity", h.GetRecentActivity)
}
