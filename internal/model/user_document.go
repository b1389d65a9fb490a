package model

import "time"

type UserDocument struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"-"`

	UserID uint `json:"user_id" gorm:"not null;index"`
	User   User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`

	Filename         string `json:"filename" gorm:"size:255;not null"`
	OriginalFilename string `json:"-" gorm:"size:255"`
	FileType         string `json:"file_type" gorm:"size:100"`
	FileSize         int64  `json:"file_size"`

	// 两种存储：库内字节或外部路径，当前路由全部走库内存储
	FilePath string `json:"-" gorm:"size:500"`
	FileData []byte `json:"-"`

	Category    string `json:"category" gorm:"size:100"`
	Description string `json:"description" gorm:"size:500"`
}
