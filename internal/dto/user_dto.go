package dto

import "agency-server/internal/model"

type RegisterStartRequest struct {
	Email            string `json:"email" binding:"required,email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"date_of_birth"`
	Nationality      string `json:"nationality"`
	ExperienceYears  *int   `json:"experience_years"`
	PreviousRoles    string `json:"previous_roles"`
	Skills           string `json:"skills"`
	PreferredCountry string `json:"preferred_country"`
	PreferredCity    string `json:"preferred_city"`
}

type AdminCreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	LicenseType string `json:"license_type"`
}

// UserPatch 显式的用户部分更新结构：仅应用请求中出现的字段
type UserPatch struct {
	FullName           *string `json:"full_name"`
	Phone              *string `json:"phone"`
	DateOfBirth        *string `json:"date_of_birth"`
	Nationality        *string `json:"nationality"`
	ExperienceYears    *int    `json:"experience_years"`
	PreviousRoles      *string `json:"previous_roles"`
	Skills             *string `json:"skills"`
	PreferredCountry   *string `json:"preferred_country"`
	PreferredCity      *string `json:"preferred_city"`
	CurrentStep        *int    `json:"current_step"`
	RegistrationStatus *string `json:"registration_status"`
	LicenseActive      *bool   `json:"license_active"`
	LicenseType        *string `json:"license_type"`
	AdminNotes         *string `json:"admin_notes"`
}

// ApplyTo 逐字段合并到用户记录
func (p *UserPatch) ApplyTo(u *model.User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Nationality != nil {
		u.Nationality = *p.Nationality
	}
	if p.ExperienceYears != nil {
		u.ExperienceYears = p.ExperienceYears
	}
	if p.PreviousRoles != nil {
		u.PreviousRoles = *p.PreviousRoles
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.PreferredCountry != nil {
		u.PreferredCountry = *p.PreferredCountry
	}
	if p.PreferredCity != nil {
		u.PreferredCity = *p.PreferredCity
	}
	if p.CurrentStep != nil {
		u.CurrentStep = *p.CurrentStep
	}
	if p.RegistrationStatus != nil {
		u.RegistrationStatus = *p.RegistrationStatus
	}
	if p.LicenseActive != nil {
		u.LicenseActive = *p.LicenseActive
	}
	if p.LicenseType != nil {
		u.LicenseType = *p.LicenseType
	}
	if p.AdminNotes != nil {
		u.AdminNotes = *p.AdminNotes
	}
}

// ProfilePatch 客户自助更新资料的受限字段集
type ProfilePatch struct {
	FullName         *string `json:"full_name"`
	Phone            *string `json:"phone"`
	DateOfBirth      *string `json:"date_of_birth"`
	Nationality      *string `json:"nationality"`
	ExperienceYears  *int    `json:"experience_years"`
	PreviousRoles    *string `json:"previous_roles"`
	Skills           *string `json:"skills"`
	PreferredCountry *string `json:"preferred_country"`
	PreferredCity    *string `json:"preferred_city"`
}

func (p *ProfilePatch) ApplyTo(u *model.User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Nationality != nil {
		u.Nationality = *p.Nationality
	}
	if p.ExperienceYears != nil {
		u.ExperienceYears = p.ExperienceYears
	}
	if p.PreviousRoles != nil {
		u.PreviousRoles = *p.PreviousRoles
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.PreferredCountry != nil {
		u.PreferredCountry = *p.PreferredCountry
	}
	if p.PreferredCity != nil {
		u.PreferredCity = *p.PreferredCity
	}
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type SetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type ToggleLicenseRequest struct {
	LicenseActive *bool `json:"license_active"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}
