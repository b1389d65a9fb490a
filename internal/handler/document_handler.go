package handler

import (
	"fmt"
	"net/http"

	"agency-server/internal/common/httpx"
	"agency-server/internal/dto"
	"agency-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GetMyDocuments 当前客户的文档列表
func (h *Handler) GetMyDocuments(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	docs, err := h.service.ListUserDocuments(user.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文档列表失败")
		return
	}

	out := make([]dto.DocumentOut, 0, len(docs))
	for i := range docs {
		url := fmt.Sprintf("/api/customer/profile/documents/download/%d", docs[i].ID)
		out = append(out, dto.NewDocumentOut(&docs[i], url))
	}
	c.JSON(http.StatusOK, out)
}

// UploadMyDocument 客户上传文档
func (h *Handler) UploadMyDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}
	category := c.DefaultPostForm("category", "other")
	description := c.PostForm("description")

	data, err := readFormFile(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取文件失败"})
		return
	}

	doc, err := h.service.UploadDocument(user.ID, fh.Filename, fh.Header.Get("Content-Type"), data, category, description)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传文档失败")
		return
	}

	url := fmt.Sprintf("/api/customer/profile/documents/download/%d", doc.ID)
	c.JSON(http.StatusCreated, dto.NewDocumentOut(doc, url))
}

// DownloadMyDocument 下载自己的文档，附件方式返回
func (h *Handler) DownloadMyDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	docID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文档ID"})
		return
	}

	doc, err := h.service.GetOwnedDocument(docID, user.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文档失败")
		return
	}

	contentType := doc.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, contentType, doc.FileData)
}

// DeleteMyDocument 删除自己的文档
func (h *Handler) DeleteMyDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	docID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文档ID"})
		return
	}

	if err := h.service.DeleteOwnedDocument(docID, user.ID); err != nil {
		httpx.WriteServiceError(c, err, "删除文档失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
