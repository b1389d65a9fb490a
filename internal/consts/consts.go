package consts

const (
	ApplicationName    = "Agency Server"
	ApplicationVersion = "3.0.0"
)

// 预订状态
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusRejected  = "rejected"
)

// BookingStatuses 合法的预订状态集合
var BookingStatuses = map[string]bool{
	BookingStatusPending:   true,
	BookingStatusConfirmed: true,
	BookingStatusCompleted: true,
	BookingStatusRejected:  true,
}

// 注册流程状态
const (
	RegistrationInProgress = "in_progress"
	RegistrationSubmitted  = "submitted"
)

// 文档分类
const (
	DocumentCategoryCV      = "cv"
	DocumentCategoryPayment = "payment"
)
