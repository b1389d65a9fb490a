package consts

const (

	// SettingHomepageContent 首页内容 (JSON)
	SettingHomepageContent = "homepage_content"

	// SettingTimeSlots 可预约时间段 (JSON)
	SettingTimeSlots = "time_slots"
)
