package dto

import (
	"time"

	"agency-server/internal/model"
)

type DocumentOut struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Filename    string    `json:"filename"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
	DownloadURL string    `json:"download_url"`
}

// NewDocumentOut 构造文档响应，下载地址由调用方按路由组拼接
func NewDocumentOut(d *model.UserDocument, downloadURL string) DocumentOut {
	return DocumentOut{
		ID:          d.ID,
		UserID:      d.UserID,
		Filename:    d.Filename,
		Category:    d.Category,
		Description: d.Description,
		UploadedAt:  d.UploadedAt,
		DownloadURL: downloadURL,
	}
}

type DashboardStats struct {
	Users     UserStats     `json:"users"`
	Bookings  BookingStats  `json:"bookings"`
	Documents DocumentStats `json:"documents"`
}

type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
}

type DocumentStats struct {
	Total int64 `json:"total"`
}

type RecentActivity struct {
	RecentBookings []model.Booking `json:"recent_bookings"`
	RecentUsers    []model.User    `json:"recent_users"`
}
