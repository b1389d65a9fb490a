package handler

import (
	"net/http"

	"agency-server/internal/common/httpx"
	"agency-server/internal/consts"
	"agency-server/internal/dto"

	"github.com/gin-gonic/gin"
)

// RegisterStart 注册向导第一步：创建待完善的客户记录
func (h *Handler) RegisterStart(c *gin.Context) {
	var req dto.RegisterStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.RegisterStart(&req)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// RegisterUpdate 注册向导中间步骤：按字段合并更新
func (h *Handler) RegisterUpdate(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	var patch dto.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.RegisterUpdate(userID, &patch)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新注册信息失败")
		return
	}

	c.JSON(http.StatusOK, user)
}

// RegisterUploadCV 注册向导最后一步：上传简历并提交申请
func (h *Handler) RegisterUploadCV(c *gin.Context) {
	h.registerUpload(c, consts.DocumentCategoryCV)
}

// RegisterUploadPayment 上传付款凭证并提交申请
func (h *Handler) RegisterUploadPayment(c *gin.Context) {
	h.registerUpload(c, consts.DocumentCategoryPayment)
}

func (h *Handler) registerUpload(c *gin.Context, category string) {
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

	data, err := readFormFile(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取文件失败"})
		return
	}

	doc, err := h.service.AttachRegistrationDocument(userID, category, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传文件失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "提交成功，请等待审核",
		"document_id": doc.ID,
		"filename":    doc.Filename,
	})
}
