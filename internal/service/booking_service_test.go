package service

import (
	"testing"
	"time"

	"agency-server/internal/common"
	"agency-server/internal/consts"
	"agency-server/internal/dto"
	"agency-server/internal/model"
	"agency-server/internal/repository"
)

func createBooking(t *testing.T, svc *Service, email, date string) *model.Booking {
	t.Helper()
	booking, err := svc.CreateBooking(&dto.BookingCreateRequest{
		Name:  "Test Person",
		Email: email,
		Phone: "+49123",
		Date:  date,
		Time:  "10:00",
	})
	if err != nil {
		t.Fatalf("创建测试预订失败: %v", err)
	}
	return booking
}

// 测试内容：公开预订默认 pending 状态、60 分钟时长。
func TestCreateBooking_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	booking := createBooking(t, svc, "guest@example.com", "2026-10-01")
	if booking.Status != consts.BookingStatusPending {
		t.Fatalf("期望新预订状态 pending，实际为 %q", booking.Status)
	}
	if booking.DurationMinutes != 60 {
		t.Fatalf("期望默认时长 60 分钟，实际为 %d", booking.DurationMinutes)
	}
}

// 测试内容：非法日期格式返回 validation。
func TestCreateBooking_BadDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateBooking(&dto.BookingCreateRequest{
		Name:  "Test Person",
		Email: "guest@example.com",
		Phone: "+49123",
		Date:  "01/10/2026",
		Time:  "10:00",
	})
	serr, ok := common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误，实际为 %v", err)
	}
}

// 测试内容：裁决预订一次性写入状态、答复、操作人、时间与通知标记。
func TestConfirmBooking_WritesDecisionFields(t *testing.T) {
	svc, _ := newTestService(t)
	booking := createBooking(t, svc, "guest@example.com", "2026-10-01")

	confirmed, err := svc.ConfirmBooking(booking.ID, &dto.BookingConfirmRequest{
		Status:        consts.BookingStatusConfirmed,
		AdminResponse: "See you then",
		ConfirmedBy:   "admin",
	})
	if err != nil {
		t.Fatalf("ConfirmBooking error: %v", err)
	}

	if confirmed.Status != consts.BookingStatusConfirmed {
		t.Fatalf("期望状态 confirmed，实际为 %q", confirmed.Status)
	}
	if confirmed.AdminResponse != "See you then" || confirmed.ConfirmedBy != "admin" {
		t.Fatalf("期望裁决字段写入，实际为 %+v", confirmed)
	}
	if confirmed.ConfirmedAt == nil {
		t.Fatalf("期望 confirmed_at 非空")
	}
	if !confirmed.NotificationSent {
		t.Fatalf("期望通知标记置位")
	}
}

// 测试内容：未知状态与不存在的预订分别返回 validation 与 not_found。
func TestConfirmBooking_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	booking := createBooking(t, svc, "guest@example.com", "2026-10-01")

	_, err := svc.ConfirmBooking(booking.ID, &dto.BookingConfirmRequest{
		Status:      "approved",
		ConfirmedBy: "admin",
	})
	serr, ok := common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误，实际为 %v", err)
	}

	_, err = svc.ConfirmBooking(9999, &dto.BookingConfirmRequest{
		Status:      consts.BookingStatusConfirmed,
		ConfirmedBy: "admin",
	})
	serr, ok = common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeNotFound {
		t.Fatalf("期望 not_found 错误，实际为 %v", err)
	}
}

// 测试内容：部分更新仅修改携带字段，未知状态被拒绝。
func TestUpdateBooking_Patch(t *testing.T) {
	svc, _ := newTestService(t)
	booking := createBooking(t, svc, "guest@example.com", "2026-10-01")

	status := consts.BookingStatusCompleted
	updated, err := svc.UpdateBooking(booking.ID, &dto.BookingPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateBooking error: %v", err)
	}
	if updated.Status != consts.BookingStatusCompleted {
		t.Fatalf("期望状态 completed，实际为 %q", updated.Status)
	}
	if updated.Email != "guest@example.com" {
		t.Fatalf("期望未携带字段不变，实际为 %+v", updated)
	}

	bogus := "bogus"
	_, err = svc.UpdateBooking(booking.ID, &dto.BookingPatch{Status: &bogus})
	serr, ok := common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误，实际为 %v", err)
	}
}

// 测试内容：列表筛选校验状态取值。
func TestListBookings_FilterValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListBookings(repository.BookingFilter{Status: "bogus"})
	serr, ok := common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误，实际为 %v", err)
	}

	createBooking(t, svc, "a@example.com", "2026-10-01")
	createBooking(t, svc, "b@example.com", "2026-10-02")

	all, err := svc.ListBookings(repository.BookingFilter{})
	if err != nil {
		t.Fatalf("ListBookings error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("期望 2 条预订，实际为 %d", len(all))
	}

	pending, err := svc.ListBookings(repository.BookingFilter{Status: consts.BookingStatusPending})
	if err != nil {
		t.Fatalf("ListBookings error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("期望 2 条 pending 预订，实际为 %d", len(pending))
	}
}

// 测试内容：客户按邮箱匹配自己的预订，支持状态筛选。
func TestCustomerBookings(t *testing.T) {
	svc, _ := newTestService(t)
	user := createActiveUser(t, svc, "mine@example.com", "pass-123456")

	b1 := createBooking(t, svc, "mine@example.com", "2026-10-01")
	createBooking(t, svc, "other@example.com", "2026-10-01")

	if _, err := svc.ConfirmBooking(b1.ID, &dto.BookingConfirmRequest{
		Status:      consts.BookingStatusConfirmed,
		ConfirmedBy: "admin",
	}); err != nil {
		t.Fatalf("ConfirmBooking error: %v", err)
	}

	mine, err := svc.CustomerBookings(user)
	if err != nil {
		t.Fatalf("CustomerBookings error: %v", err)
	}
	if len(mine) != 1 || mine[0].Email != "mine@example.com" {
		t.Fatalf("期望仅返回本人预订，实际为 %+v", mine)
	}

	confirmed, err := svc.CustomerBookingsByStatus(user, consts.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("CustomerBookingsByStatus error: %v", err)
	}
	if len(confirmed) != 1 {
		t.Fatalf("期望 1 条 confirmed 预订，实际为 %d", len(confirmed))
	}

	if _, err := svc.CustomerBookingsByStatus(user, "bogus"); err == nil {
		t.Fatalf("期望非法状态返回错误")
	}
}

// 测试内容：日程视图只含范围内的已确认预订，按日期升序。
func TestCalendarUpcoming(t *testing.T) {
	svc, _ := newTestService(t)

	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}

	inRange1 := createBooking(t, svc, "a@example.com", day(5))
	inRange2 := createBooking(t, svc, "b@example.com", day(2))
	outOfRange := createBooking(t, svc, "c@example.com", day(10))
	pendingInRange := createBooking(t, svc, "d@example.com", day(3))
	_ = pendingInRange

	for _, b := range []*model.Booking{inRange1, inRange2, outOfRange} {
		if _, err := svc.ConfirmBooking(b.ID, &dto.BookingConfirmRequest{
			Status:      consts.BookingStatusConfirmed,
			ConfirmedBy: "admin",
		}); err != nil {
			t.Fatalf("ConfirmBooking error: %v", err)
		}
	}

	upcoming, err := svc.CalendarUpcoming(7)
	if err != nil {
		t.Fatalf("CalendarUpcoming error: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("期望 2 条已确认预订，实际为 %d", len(upcoming))
	}
	if upcoming[0].Date > upcoming[1].Date {
		t.Fatalf("期望按日期升序，实际为 %q, %q", upcoming[0].Date, upcoming[1].Date)
	}

	if _, err := svc.CalendarUpcoming(-1); err == nil {
		t.Fatalf("期望负数天数返回错误")
	}
}

// 测试内容：今日日程按当天日期匹配已确认预订。
func TestCalendarToday(t *testing.T) {
	svc, _ := newTestService(t)

	today := time.Now().Format("2006-01-02")
	b := createBooking(t, svc, "a@example.com", today)
	if _, err := svc.ConfirmBooking(b.ID, &dto.BookingConfirmRequest{
		Status:      consts.BookingStatusConfirmed,
		ConfirmedBy: "admin",
	}); err != nil {
		t.Fatalf("ConfirmBooking error: %v", err)
	}
	createBooking(t, svc, "b@example.com", today) // 未确认，不应出现

	todays, err := svc.CalendarToday()
	if err != nil {
		t.Fatalf("CalendarToday error: %v", err)
	}
	if len(todays) != 1 || todays[0].ID != b.ID {
		t.Fatalf("期望仅今日已确认预订，实际为 %+v", todays)
	}
}

// 测试内容：待通知列表只含未发通知的 pending 预订。
func TestPendingNotifications(t *testing.T) {
	svc, _ := newTestService(t)

	createBooking(t, svc, "a@example.com", "2026-10-01")
	decided := createBooking(t, svc, "b@example.com", "2026-10-02")
	if _, err := svc.ConfirmBooking(decided.ID, &dto.BookingConfirmRequest{
		Status:      consts.BookingStatusRejected,
		ConfirmedBy: "admin",
	}); err != nil {
		t.Fatalf("ConfirmBooking error: %v", err)
	}

	count, list, err := svc.PendingNotifications()
	if err != nil {
		t.Fatalf("PendingNotifications error: %v", err)
	}
	if count != 1 || len(list) != 1 || list[0].Email != "a@example.com" {
		t.Fatalf("期望仅 1 条待通知预订，实际 count=%d list=%+v", count, list)
	}
}

// 测试内容：删除预订后无法再查询。
func TestDeleteBooking(t *testing.T) {
	svc, _ := newTestService(t)
	booking := createBooking(t, svc, "a@example.com", "2026-10-01")

	if err := svc.DeleteBooking(booking.ID); err != nil {
		t.Fatalf("DeleteBooking error: %v", err)
	}
	if _, err := svc.GetBooking(booking.ID); err == nil {
		t.Fatalf("期望删除后查询失败")
	}
	if err := svc.DeleteBooking(booking.ID); err == nil {
		t.Fatalf("期望重复删除返回错误")
	}
}
