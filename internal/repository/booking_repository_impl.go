package repository

import (
	"agency-server/internal/consts"
	"agency-server/internal/model"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func (r *BookingRepository) FindByID(id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Create(booking *model.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) Save(booking *model.Booking) error {
	return r.db.Save(booking).Error
}

func (r *BookingRepository) Delete(booking *model.Booking) error {
	return r.db.Delete(booking).Error
}

func (r *BookingRepository) List(filter BookingFilter) ([]model.Booking, error) {
	query := r.db.Model(&model.Booking{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var bookings []model.Booking
	if err := query.Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListByStatus(status string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("status = ?", status).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListByEmail(email string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("email = ?", email).
		Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListByEmailAndStatus(email, status string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("email = ? AND status = ?", email, status).
		Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListConfirmedOn(date string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("date = ? AND status = ?", date, consts.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListConfirmedBetween(from, to string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("date >= ? AND date <= ? AND status = ?", from, to, consts.BookingStatusConfirmed).
		Order("date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListPendingUnnotified() ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("status = ? AND notification_sent = ?", consts.BookingStatusPending, false).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListRecent(limit int) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
