package model

import "gorm.io/datatypes"

type Setting struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	Key         string            `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Value       datatypes.JSONMap `json:"value"`
	Description string            `json:"description" gorm:"type:text"`
}
