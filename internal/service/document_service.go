package service

import (
	"errors"

	"agency-server/internal/common"
	"agency-server/internal/model"

	"gorm.io/gorm"
)

func (s *Service) ListUserDocuments(userID uint) ([]model.UserDocument, error) {
	return s.documents.ListByUserID(userID)
}

// UploadDocument 文档以字节入库存储，随附声明的类型与大小
func (s *Service) UploadDocument(userID uint, filename, contentType string, data []byte, category, description string) (*model.UserDocument, error) {
	if _, err := s.GetUser(userID); err != nil {
		return nil, err
	}

	doc := &model.UserDocument{
		UserID:           userID,
		Filename:         filename,
		OriginalFilename: filename,
		FileType:         contentType,
		FileSize:         int64(len(data)),
		FileData:         data,
		Category:         category,
		Description:      description,
	}
	if err := s.documents.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetDocument 管理端取任意文档
func (s *Service) GetDocument(id uint) (*model.UserDocument, error) {
	doc, err := s.documents.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该文档")
		}
		return nil, err
	}
	return doc, nil
}

// GetOwnedDocument 客户只能取归属自己的文档
func (s *Service) GetOwnedDocument(id uint, userID uint) (*model.UserDocument, error) {
	doc, err := s.documents.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该文档")
		}
		return nil, err
	}
	return doc, nil
}

// DeleteOwnedDocument 删除归属范围内的文档
func (s *Service) DeleteOwnedDocument(id uint, userID uint) error {
	doc, err := s.GetOwnedDocument(id, userID)
	if err != nil {
		return err
	}
	return s.documents.Delete(doc)
}
