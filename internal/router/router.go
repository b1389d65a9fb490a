package router

import (
	"net/http"

	"agency-server/internal/consts"
	"agency-server/internal/handler"
	adminhandler "agency-server/internal/handler/admin"
	"agency-server/internal/middleware"
	"agency-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler      *handler.Handler
	adminHandler *adminhandler.Handler
	service      *service.Service
}

func NewRouter(h *handler.Handler, ah *adminhandler.Handler, appService *service.Service) *Router {
	return &Router{
		handler:      h,
		adminHandler: ah,
		service:      appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头与请求 ID 中间件
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    consts.ApplicationName,
			"version": consts.ApplicationVersion,
			"status":  "running",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	// 应用请求体大小限制中间件（上传路由单独放行）
	api.Use(middleware.BodyLimitMiddleware())

	registerCustomerRoutes(api, rt.handler, rt.service)
	registerAdminRoutes(api, rt.adminHandler)
}
