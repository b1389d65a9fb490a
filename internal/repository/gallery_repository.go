package repository

import "agency-server/internal/model"

type GalleryStore interface {
	FindByID(id uint) (*model.GalleryImage, error)
	Create(image *model.GalleryImage) error
	Delete(image *model.GalleryImage) error
	ListAll() ([]model.GalleryImage, error)
}
