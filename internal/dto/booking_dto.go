package dto

import "agency-server/internal/model"

type BookingCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Purpose string `json:"purpose"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	UserID  *uint  `json:"user_id"`
}

// BookingPatch 显式的预订部分更新结构
type BookingPatch struct {
	Status        *string `json:"status"`
	AdminResponse *string `json:"admin_response"`
}

func (p *BookingPatch) ApplyTo(b *model.Booking) {
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.AdminResponse != nil {
		b.AdminResponse = *p.AdminResponse
	}
}

type BookingConfirmRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminResponse string `json:"admin_response"`
	ConfirmedBy   string `json:"confirmed_by" binding:"required"`
}
