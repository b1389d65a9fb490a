package model

import "time"

type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 松散关联：公开预订可不带用户
	UserID *uint `json:"user_id" gorm:"index"`

	Name        string `json:"name" gorm:"size:200;not null"`
	Email       string `json:"email" gorm:"size:255;not null;index"`
	Phone       string `json:"phone" gorm:"size:50;not null"`
	Purpose     string `json:"purpose" gorm:"size:500"`
	Title       string `json:"title" gorm:"size:200"`
	Description string `json:"description" gorm:"type:text"`
	BookingType string `json:"booking_type" gorm:"size:100"`

	// 日期固定为 YYYY-MM-DD，字典序即时间序
	Date            string `json:"date" gorm:"size:10;not null;index"`
	Time            string `json:"time" gorm:"size:20;not null"`
	DurationMinutes int    `json:"duration_minutes"`

	Status string `json:"status" gorm:"size:50;index"`

	NotificationSent bool       `json:"notification_sent"`
	NotificationDate *time.Time `json:"notification_date"`
	ReminderSent     bool       `json:"reminder_sent"`

	AdminResponse string     `json:"admin_response" gorm:"type:text"`
	ConfirmedBy   string     `json:"confirmed_by" gorm:"size:100"`
	ConfirmedAt   *time.Time `json:"confirmed_at"`
}
