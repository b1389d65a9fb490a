package service

import (
	"testing"

	"agency-server/internal/consts"
	"agency-server/internal/dto"
)

// 测试内容：控制台统计按账号状态与预订状态分桶计数。
func TestDashboardStats(t *testing.T) {
	svc, _ := newTestService(t)

	active := createActiveUser(t, svc, "active@example.com", "pass-123456")
	if _, err := svc.RegisterStart(&dto.RegisterStartRequest{Email: "inactive@example.com"}); err != nil {
		t.Fatalf("RegisterStart error: %v", err)
	}

	createBooking(t, svc, "a@example.com", "2026-10-01")
	confirmed := createBooking(t, svc, "b@example.com", "2026-10-02")
	done := createBooking(t, svc, "c@example.com", "2026-10-03")
	for _, tc := range []struct {
		id     uint
		status string
	}{
		{confirmed.ID, consts.BookingStatusConfirmed},
		{done.ID, consts.BookingStatusCompleted},
	} {
		if _, err := svc.ConfirmBooking(tc.id, &dto.BookingConfirmRequest{
			Status:      tc.status,
			ConfirmedBy: "admin",
		}); err != nil {
			t.Fatalf("ConfirmBooking error: %v", err)
		}
	}

	if _, err := svc.UploadDocument(active.ID, "cv.pdf", "application/pdf", []byte("pdf"), "cv", ""); err != nil {
		t.Fatalf("UploadDocument error: %v", err)
	}

	stats, err := svc.DashboardStats()
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}

	if stats.Users.Total != 2 || stats.Users.Active != 1 || stats.Users.Inactive != 1 {
		t.Fatalf("期望用户统计 2/1/1，实际为 %+v", stats.Users)
	}
	if stats.Bookings.Total != 3 || stats.Bookings.Pending != 1 || stats.Bookings.Confirmed != 1 || stats.Bookings.Completed != 1 {
		t.Fatalf("期望预订统计 3/1/1/1，实际为 %+v", stats.Bookings)
	}
	if stats.Documents.Total != 1 {
		t.Fatalf("期望文档总数 1，实际为 %d", stats.Documents.Total)
	}
}

// 测试内容：最近动态按数量上限返回。
func TestRecentActivity(t *testing.T) {
	svc, _ := newTestService(t)

	for _, email := range []string{"u1@example.com", "u2@example.com", "u3@example.com"} {
		if _, err := svc.RegisterStart(&dto.RegisterStartRequest{Email: email}); err != nil {
			t.Fatalf("RegisterStart error: %v", err)
		}
	}
	for _, d := range []string{"2026-10-01", "2026-10-02", "2026-10-03"} {
		createBooking(t, svc, "guest@example.com", d)
	}

	activity, err := svc.RecentActivity(2)
	if err != nil {
		t.Fatalf("RecentActivity error: %v", err)
	}
	if len(activity.RecentUsers) != 2 {
		t.Fatalf("期望最近用户 2 条，实际为 %d", len(activity.RecentUsers))
	}
	if len(activity.RecentBookings) != 2 {
		t.Fatalf("期望最近预订 2 条，实际为 %d", len(activity.RecentBookings))
	}
}
