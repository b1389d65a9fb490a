package admin

import (
	"fmt"
	"io"
	"net/http"

	"agency-server/internal/dto"

	"github.com/gin-gonic/gin"
)

// GetUserDocuments 指定客户的文档列表
func (h *Handler) GetUserDocuments(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	docs, err := h.service.ListUserDocuments(userID)
	if err != nil {
		writeServiceError(c, err, "获取文档列表失败")
		return
	}

	out := make([]dto.DocumentOut, 0, len(docs))
	for i := range docs {
		url := fmt.Sprintf("/api/admin/documents/view/%d", docs[i].ID)
		out = append(out, dto.NewDocumentOut(&docs[i], url))
	}
	c.JSON(http.StatusOK, out)
}

// UploadUserDocument 管理端替客户上传文档
func (h *Handler) UploadUserDocument(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}
	category := c.DefaultPostForm("category", "other")
	description := c.PostForm("description")

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取文件失败"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取文件失败"})
		return
	}

	doc, err := h.service.UploadDocument(userID, fh.Filename, fh.Header.Get("Content-Type"), data, category, description)
	if err != nil {
		writeServiceError(c, err, "上传文档失败")
		return
	}

	url := fmt.Sprintf("/api/admin/documents/view/%d", doc.ID)
	c.JSON(http.StatusCreated, dto.NewDocumentOut(doc, url))
}

// ViewDocument 在线预览文档，内联方式返回
func (h *Handler) ViewDocument(c *gin.Context) {
	docID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文档ID"})
		return
	}

	doc, err := h.service.GetDocument(docID)
	if err != nil {
		writeServiceError(c, err, "获取文档失败")
		return
	}

	contentType := doc.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename))
	c.Data(http.StatusOK, contentType, doc.FileData)
}
