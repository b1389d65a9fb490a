package repository

import (
	"agency-server/internal/model"

	"gorm.io/datatypes"
)

type SettingStore interface {
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	Upsert(key string, value datatypes.JSONMap) (*model.Setting, error)
}
