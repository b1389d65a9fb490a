package repository

import (
	"agency-server/internal/model"

	"gorm.io/gorm"
)

type StatRepository struct {
	db *gorm.DB
}

func (r *StatRepository) CountUsers() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatRepository) CountActiveUsers() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("license_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatRepository) CountBookings() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Booking{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatRepository) CountBookingsByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Booking{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatRepository) CountDocuments() (int64, error) {
	var count int64
	if err := r.db.Model(&model.UserDocument{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
