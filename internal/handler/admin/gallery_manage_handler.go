package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadGalleryImage 上传图库图片，落盘到静态目录
func (h *Handler) UploadGalleryImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}
	title := c.PostForm("title")
	description := c.PostForm("description")

	image, err := h.service.UploadGalleryImage(fh, title, description)
	if err != nil {
		writeServiceError(c, err, "上传图片失败")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteGalleryImage 删除图库图片，连同磁盘文件
func (h *Handler) DeleteGalleryImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	if err := h.service.DeleteGalleryImage(id); err != nil {
		writeServiceError(c, err, "删除图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
