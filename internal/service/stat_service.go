package service

import (
	"agency-server/internal/consts"
	"agency-server/internal/dto"
)

// DashboardStats 后台仪表盘统计，全部为独立的标量聚合查询
func (s *Service) DashboardStats() (*dto.DashboardStats, error) {
	totalUsers, err := s.stats.CountUsers()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.stats.CountActiveUsers()
	if err != nil {
		return nil, err
	}

	totalBookings, err := s.stats.CountBookings()
	if err != nil {
		return nil, err
	}
	pendingBookings, err := s.stats.CountBookingsByStatus(consts.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	confirmedBookings, err := s.stats.CountBookingsByStatus(consts.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	completedBookings, err := s.stats.CountBookingsByStatus(consts.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}

	totalDocuments, err := s.stats.CountDocuments()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Users: dto.UserStats{
			Total:    totalUsers,
			Active:   activeUsers,
			Inactive: totalUsers - activeUsers,
		},
		Bookings: dto.BookingStats{
			Total:     totalBookings,
			Pending:   pendingBookings,
			Confirmed: confirmedBookings,
			Completed: completedBookings,
		},
		Documents: dto.DocumentStats{
			Total: totalDocuments,
		},
	}, nil
}

// RecentActivity 最近创建的预订与用户，两条各自有界的倒序查询
func (s *Service) RecentActivity(limit int) (*dto.RecentActivity, error) {
	bookings, err := s.bookings.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return &dto.RecentActivity{
		RecentBookings: bookings,
		RecentUsers:    users,
	}, nil
}
