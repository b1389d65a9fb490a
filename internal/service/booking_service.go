package service

import (
	"errors"
	"time"

	"agency-server/internal/common"
	"agency-server/internal/consts"
	"agency-server/internal/dto"
	"agency-server/internal/model"
	"agency-server/internal/repository"
	"agency-server/internal/utils"

	"gorm.io/gorm"
)

// CreateBooking 公开预订入口，新预订始终为 pending
func (s *Service) CreateBooking(req *dto.BookingCreateRequest) (*model.Booking, error) {
	if !utils.ValidateDate(req.Date) {
		return nil, common.NewValidationError("日期格式必须为 YYYY-MM-DD")
	}

	booking := &model.Booking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Purpose:         req.Purpose,
		Date:            req.Date,
		Time:            req.Time,
		UserID:          req.UserID,
		DurationMinutes: 60,
		Status:          consts.BookingStatusPending,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) GetBooking(id uint) (*model.Booking, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该预订")
		}
		return nil, err
	}
	return booking, nil
}

func (s *Service) ListBookings(filter repository.BookingFilter) ([]model.Booking, error) {
	if filter.Status != "" && !consts.BookingStatuses[filter.Status] {
		return nil, common.NewValidationError("未知的预订状态")
	}
	return s.bookings.List(filter)
}

func (s *Service) ListPendingBookings() ([]model.Booking, error) {
	return s.bookings.ListByStatus(consts.BookingStatusPending)
}

// ConfirmBooking 管理员裁决：状态、答复、操作人、时间与通知标记一次写入
func (s *Service) ConfirmBooking(id uint, req *dto.BookingConfirmRequest) (*model.Booking, error) {
	if !consts.BookingStatuses[req.Status] {
		return nil, common.NewValidationError("未知的预订状态")
	}

	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking.Status = req.Status
	booking.AdminResponse = req.AdminResponse
	booking.ConfirmedBy = req.ConfirmedBy
	booking.ConfirmedAt = &now
	booking.NotificationSent = true
	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateBooking 管理员部分更新
func (s *Service) UpdateBooking(id uint, patch *dto.BookingPatch) (*model.Booking, error) {
	if patch.Status != nil && !consts.BookingStatuses[*patch.Status] {
		return nil, common.NewValidationError("未知的预订状态")
	}

	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(booking)
	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) DeleteBooking(id uint) error {
	booking, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	return s.bookings.Delete(booking)
}

// CustomerBookings 按登录客户的邮箱匹配其预订
func (s *Service) CustomerBookings(user *model.User) ([]model.Booking, error) {
	return s.bookings.ListByEmail(user.Email)
}

func (s *Service) CustomerBookingsByStatus(user *model.User, status string) ([]model.Booking, error) {
	if !consts.BookingStatuses[status] {
		return nil, common.NewValidationError("未知的预订状态")
	}
	return s.bookings.ListByEmailAndStatus(user.Email, status)
}

// CalendarToday 今日已确认预订
func (s *Service) CalendarToday() ([]model.Booking, error) {
	today := time.Now().Format("2006-01-02")
	return s.bookings.ListConfirmedOn(today)
}

// CalendarUpcoming [今天, 今天+days] 范围内的已确认预订，按日期升序
func (s *Service) CalendarUpcoming(days int) ([]model.Booking, error) {
	if days < 0 {
		return nil, common.NewValidationError("days 不能为负数")
	}
	now := time.Now()
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 0, days).Format("2006-01-02")
	return s.bookings.ListConfirmedBetween(from, to)
}

// PendingNotifications 待通知的 pending 预订，附带数量
func (s *Service) PendingNotifications() (int, []model.Booking, error) {
	bookings, err := s.bookings.ListPendingUnnotified()
	if err != nil {
		return 0, nil, err
	}
	return len(bookings), bookings, nil
}
