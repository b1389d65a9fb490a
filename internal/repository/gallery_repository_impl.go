package repository

import (
	"agency-server/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func (r *GalleryRepository) FindByID(id uint) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GalleryRepository) Create(image *model.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *GalleryRepository) Delete(image *model.GalleryImage) error {
	return r.db.Delete(image).Error
}

func (r *GalleryRepository) ListAll() ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
