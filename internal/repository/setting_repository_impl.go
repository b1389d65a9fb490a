package repository

import (
	"agency-server/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

// Upsert 按 key 覆盖写入，不存在则创建
func (r *SettingRepository) Upsert(key string, value datatypes.JSONMap) (*model.Setting, error) {
	var setting model.Setting
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key = ?", key).First(&setting).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			setting = model.Setting{Key: key, Value: value}
			return tx.Create(&setting).Error
		}
		setting.Value = value
		return tx.Model(&setting).Update("value", value).Error
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
