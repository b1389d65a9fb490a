package model

import "time"

type GalleryImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Filename    string `json:"filename" gorm:"size:255;not null"`
	Filepath    string `json:"filepath" gorm:"size:500;not null"`
	Title       string `json:"title" gorm:"size:200"`
	Description string `json:"description" gorm:"size:500"`
}
