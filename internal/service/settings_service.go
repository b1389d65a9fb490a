package service

import (
	"errors"

	"agency-server/internal/consts"
	"agency-server/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 两个内置配置项的出厂默认值，首次读取时惰性落库
func defaultSettingValue(key string) datatypes.JSONMap {
	switch key {
	case consts.SettingHomepageContent:
		return datatypes.JSONMap{
			"hero_title":    "Your Gateway to European Employment",
			"hero_subtitle": "Connecting talented professionals with opportunities across EU",
			"about_text":    "We specialize in placing skilled workers in positions throughout Europe.",
			"countries":     []interface{}{"Germany", "France", "Netherlands", "Belgium", "Austria"},
		}
	case consts.SettingTimeSlots:
		return datatypes.JSONMap{
			"slots": []interface{}{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
		}
	}
	return nil
}

// GetSettingWithDefault 读取配置项，不存在则写入默认值后返回
func (s *Service) GetSettingWithDefault(key string) (*model.Setting, error) {
	setting, err := s.settings.FindByKey(key)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	setting = &model.Setting{Key: key, Value: defaultSettingValue(key)}
	if err := s.settings.Create(setting); err != nil {
		// 并发首读可能已有人写入，重查一次
		if existing, ferr := s.settings.FindByKey(key); ferr == nil {
			return existing, nil
		}
		return nil, err
	}
	return setting, nil
}

// UpdateSetting 管理端覆盖写入（upsert）
func (s *Service) UpdateSetting(key string, value map[string]interface{}) (*model.Setting, error) {
	return s.settings.Upsert(key, datatypes.JSONMap(value))
}
