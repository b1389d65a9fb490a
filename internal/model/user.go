package model

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `json:"username" gorm:"unique;index;size:100;not null"`
	Email    string `json:"email" gorm:"unique;index;size:255;not null"`
	FullName string `json:"full_name" gorm:"size:200"`
	Phone    string `json:"phone" gorm:"size:50"`

	DateOfBirth string `json:"date_of_birth" gorm:"size:50"`
	Nationality string `json:"nationality" gorm:"size:100"`

	// 账号许可（后台管理）
	LicenseActive bool       `json:"license_active"`
	LicenseType   string     `json:"license_type" gorm:"size:50"`
	LicenseExpiry *time.Time `json:"license_expiry"`

	// 用户数据目录
	UserFolder string `json:"-" gorm:"size:500"`

	// 密码哈希，永不出现在响应中
	Password string `json:"-" gorm:"column:hashed_password;size:255"`

	// 求职资料（客户注册）
	ExperienceYears  *int   `json:"experience_years"`
	PreviousRoles    string `json:"previous_roles" gorm:"type:text"`
	Skills           string `json:"skills" gorm:"type:text"`
	PreferredCountry string `json:"preferred_country" gorm:"size:100"`
	PreferredCity    string `json:"preferred_city" gorm:"size:100"`

	// CV 早期落盘方案遗留字段，文档已入库存储
	CVFilename string `json:"-" gorm:"size:255"`
	CVPath     string `json:"-" gorm:"size:500"`

	// 注册进度（客户）
	CurrentStep        int    `json:"current_step"`
	RegistrationStatus string `json:"registration_status" gorm:"size:50"`

	LastLogin  *time.Time `json:"last_login"`
	AdminNotes string     `json:"admin_notes" gorm:"type:text"`

	Documents []UserDocument `json:"-" gorm:"foreignKey:UserID"`
}
