package repository

import "agency-server/internal/model"

// BookingFilter 管理端预订列表的可选过滤条件
type BookingFilter struct {
	Status string
	UserID *uint
}

type BookingStore interface {
	FindByID(id uint) (*model.Booking, error)
	Create(booking *model.Booking) error
	Save(booking *model.Booking) error
	Delete(booking *model.Booking) error
	List(filter BookingFilter) ([]model.Booking, error)
	ListByStatus(status string) ([]model.Booking, error)
	ListByEmail(email string) ([]model.Booking, error)
	ListByEmailAndStatus(email, status string) ([]model.Booking, error)
	ListConfirmedOn(date string) ([]model.Booking, error)
	ListConfirmedBetween(from, to string) ([]model.Booking, error)
	ListPendingUnnotified() ([]model.Booking, error)
	ListRecent(limit int) ([]model.Booking, error)
}
