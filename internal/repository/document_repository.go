package repository

import "agency-server/internal/model"

type DocumentStore interface {
	FindByID(id uint) (*model.UserDocument, error)
	FindOwned(id uint, userID uint) (*model.UserDocument, error)
	Create(doc *model.UserDocument) error
	Delete(doc *model.UserDocument) error
	ListByUserID(userID uint) ([]model.UserDocument, error)
}
