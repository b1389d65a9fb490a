package service

import "agency-server/internal/repository"

// Service 聚合全部业务逻辑，持有各实体的存储接口
type Service struct {
	users     repository.UserStore
	bookings  repository.BookingStore
	gallery   repository.GalleryStore
	documents repository.DocumentStore
	settings  repository.SettingStore
	stats     repository.StatStore
}

func NewService(repos *repository.Repositories) *Service {
	return &Service{
		users:     repos.User,
		bookings:  repos.Booking,
		gallery:   repos.Gallery,
		documents: repos.Document,
		settings:  repos.Setting,
		stats:     repos.Stat,
	}
}
