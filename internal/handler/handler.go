package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"agency-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.Service
}

func NewHandler(appService *service.Service) *Handler {
	return &Handler{service: appService}
}

// parseIDParam 解析路径中的数字 ID，失败返回 false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// readFormFile 读取 multipart 文件内容
func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
