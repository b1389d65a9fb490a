package repository

import (
	"agency-server/internal/model"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func (r *DocumentRepository) FindByID(id uint) (*model.UserDocument, error) {
	var doc model.UserDocument
	if err := r.db.First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindOwned 归属范围查询：文档 id 与持有者 id 必须同时匹配
func (r *DocumentRepository) FindOwned(id uint, userID uint) (*model.UserDocument, error) {
	var doc model.UserDocument
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) Create(doc *model.UserDocument) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepository) Delete(doc *model.UserDocument) error {
	return r.db.Delete(doc).Error
}

func (r *DocumentRepository) ListByUserID(userID uint) ([]model.UserDocument, error) {
	var docs []model.UserDocument
	if err := r.db.Where("user_id = ?", userID).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
