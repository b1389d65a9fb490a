package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User     UserStore
	Booking  BookingStore
	Gallery  GalleryStore
	Document DocumentStore
	Setting  SettingStore
	Stat     StatStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewBookingRepository(db *gorm.DB) BookingStore {
	return &BookingRepository{db: db}
}

func NewGalleryRepository(db *gorm.DB) GalleryStore {
	return &GalleryRepository{db: db}
}

func NewDocumentRepository(db *gorm.DB) DocumentStore {
	return &DocumentRepository{db: db}
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

func NewStatRepository(db *gorm.DB) StatStore {
	return &StatRepository{db: db}
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Booking:  NewBookingRepository(db),
		Gallery:  NewGalleryRepository(db),
		Document: NewDocumentRepository(db),
		Setting:  NewSettingRepository(db),
		Stat:     NewStatRepository(db),
	}
}
