package admin

import (
	"strconv"

	"agency-server/internal/common/httpx"
	"agency-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.Service
}

func NewHandler(appService *service.Service) *Handler {
	return &Handler{service: appService}
}

func writeServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
