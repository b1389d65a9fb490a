package router

import (
	"agency-server/internal/handler"
	"agency-server/internal/middleware"
	"agency-server/internal/service"

	"github.com/gin-gonic/gin"
)

func registerCustomerRoutes(api *gin.RouterGroup, h *handler.Handler, appService *service.Service) {
	customer := api.Group("/customer")

	// 登录接口限流
	customer.POST("/login", middleware.AuthRateLimitMiddleware(), h.Login)

	// 注册向导，无需登录
	register := customer.Group("/register")
	register.POST("/start", h.RegisterStart)
	register.PUT("/update/:id", h.RegisterUpdate)
	register.POST("/upload-cv/:id", middleware.UploadBodyLimitMiddleware(), h.RegisterUploadCV)
	register.POST("/payment/:id", middleware.UploadBodyLimitMiddleware(), h.RegisterUploadPayment)

	// 公开预约表单与展示内容
	customer.POST("/booking/create", h.CreateBooking)
	customer.GET("/gallery", h.GetGallery)
	customer.GET("/settings/homepage", h.GetHomepageContent)
	customer.GET("/settings/time-slots", h.GetTimeSlots)

	// 登录后的个人中心，逐请求校验账号有效性
	profile := customer.Group("/profile")
	profile.Use(middleware.JWTAuth())
	profile.Use(middleware.ActiveUserCheck(appService))

	profile.GET("/me", h.GetProfile)
	profile.PUT("/me", h.UpdateProfile)
	profile.POST("/change-password", h.ChangePassword)

	profile.GET("/documents", h.GetMyDocuments)
	profile.POST("/documents/upload", middleware.UploadBodyLimitMiddleware(), h.UploadMyDocument)
	profile.GET("/documents/download/:id", h.DownloadMyDocument)
	profile.DELETE("/documents/:id", h.DeleteMyDocument)

	profile.GET("/bookings", h.GetMyBookings)
	profile.GET("/bookings/status/:status", h.GetMyBookingsByStatus)
}
