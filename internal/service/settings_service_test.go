package service

import (
	"testing"

	"agency-server/internal/consts"
)

// 测试内容：首次读取配置项时惰性写入出厂默认值。
func TestGetSettingWithDefault_LazyCreate(t *testing.T) {
	svc, _ := newTestService(t)

	setting, err := svc.GetSettingWithDefault(consts.SettingHomepageContent)
	if err != nil {
		t.Fatalf("GetSettingWithDefault error: %v", err)
	}
	if setting.Value["hero_title"] != "Your Gateway to European Employment" {
		t.Fatalf("期望默认 hero_title，实际为 %v", setting.Value["hero_title"])
	}

	slots, err := svc.GetSettingWithDefault(consts.SettingTimeSlots)
	if err != nil {
		t.Fatalf("GetSettingWithDefault error: %v", err)
	}
	if slots.Value["slots"] == nil {
		t.Fatalf("期望默认时间段列表，实际为 %+v", slots.Value)
	}

	// 再次读取返回已落库的同一条记录
	again, err := svc.GetSettingWithDefault(consts.SettingHomepageContent)
	if err != nil {
		t.Fatalf("GetSettingWithDefault error: %v", err)
	}
	if again.ID != setting.ID {
		t.Fatalf("期望返回同一条记录，实际 ID %d != %d", again.ID, setting.ID)
	}
}

// 测试内容：管理端更新整体覆盖配置值，再次读取可见。
func TestUpdateSetting_Upsert(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.UpdateSetting(consts.SettingTimeSlots, map[string]interface{}{
		"slots": []interface{}{"08:00", "12:00"},
	}); err != nil {
		t.Fatalf("UpdateSetting error: %v", err)
	}

	setting, err := svc.GetSettingWithDefault(consts.SettingTimeSlots)
	if err != nil {
		t.Fatalf("GetSettingWithDefault error: %v", err)
	}
	slots, ok := setting.Value["slots"].([]interface{})
	if !ok || len(slots) != 2 {
		t.Fatalf("期望覆盖后的 2 个时间段，实际为 %+v", setting.Value["slots"])
	}

	// 已存在时再次 upsert 仍为覆盖语义
	if _, err := svc.UpdateSetting(consts.SettingTimeSlots, map[string]interface{}{
		"slots": []interface{}{"09:30"},
	}); err != nil {
		t.Fatalf("UpdateSetting error: %v", err)
	}
	setting, err = svc.GetSettingWithDefault(consts.SettingTimeSlots)
	if err != nil {
		t.Fatalf("GetSettingWithDefault error: %v", err)
	}
	slots, ok = setting.Value["slots"].([]interface{})
	if !ok || len(slots) != 1 {
		t.Fatalf("期望覆盖后的 1 个时间段，实际为 %+v", setting.Value["slots"])
	}
}
