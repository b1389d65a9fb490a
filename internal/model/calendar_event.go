package model

import "time"

// CalendarEvent 预留的日历事件表，当前路由均基于 Booking 投影，未使用本表
type CalendarEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`
	EventType   string `json:"event_type" gorm:"size:100"`

	EventDate string `json:"event_date" gorm:"size:10;not null;index"`
	EventTime string `json:"event_time" gorm:"size:20"`
	AllDay    bool   `json:"all_day"`

	RequiresNotification bool `json:"requires_notification"`
	NotificationCount    int  `json:"notification_count"`

	Status        string `json:"status" gorm:"size:50"`
	ReferenceID   *uint  `json:"reference_id"`
	ReferenceType string `json:"reference_type" gorm:"size:50"`
}
