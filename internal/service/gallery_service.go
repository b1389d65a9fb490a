package service

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"agency-server/internal/common"
	"agency-server/internal/config"
	"agency-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Service) ListGallery() ([]model.GalleryImage, error) {
	return s.gallery.ListAll()
}

// UploadGalleryImage 落盘保存图片并写入记录
// 磁盘文件名用 UUID 避免同名覆盖，原始文件名保留在记录中
func (s *Service) UploadGalleryImage(file *multipart.FileHeader, title, description string) (*model.GalleryImage, error) {
	galleryDir := filepath.Join(config.Get().Static.Path, "gallery")
	if err := os.MkdirAll(galleryDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v", err)
		return nil, common.NewInternalError("系统错误: 无法创建存储目录")
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.New().String() + ext
	dst := filepath.Join(galleryDir, newFilename)

	src, err := file.Open()
	if err != nil {
		return nil, common.NewValidationError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return nil, common.NewInternalError("系统错误: 无法创建文件")
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		return nil, common.NewInternalError("文件保存失败")
	}

	image := &model.GalleryImage{
		Filename:    file.Filename,
		Filepath:    filepath.ToSlash(dst),
		Title:       title,
		Description: description,
	}
	if err := s.gallery.Create(image); err != nil {
		// DB 失败则回滚磁盘文件
		_ = os.Remove(dst)
		log.Printf("Gallery upload DB error: %v", err)
		return nil, common.NewInternalError("系统错误: 数据库记录失败")
	}

	return image, nil
}

// DeleteGalleryImage 先删磁盘文件再删记录
func (s *Service) DeleteGalleryImage(id uint) error {
	image, err := s.gallery.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("未找到该图片")
		}
		return err
	}

	if _, err := os.Stat(image.Filepath); err == nil {
		_ = os.Remove(image.Filepath)
	}

	return s.gallery.Delete(image)
}
