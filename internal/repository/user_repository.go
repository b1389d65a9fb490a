package repository

import "agency-server/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	EmailExists(email string) (bool, error)
	UsernameOrEmailExists(username, email string) (bool, error)
	Create(user *model.User) error
	Save(user *model.User) error
	UpdatePasswordByID(userID uint, hashedPassword string) error
	UpdateLastLogin(userID uint) error
	ListAll() ([]model.User, error)
	ListRecent(limit int) ([]model.User, error)
	Delete(user *model.User) error
}
