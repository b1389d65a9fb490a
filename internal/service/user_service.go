package service

import (
	"errors"

	"agency-server/internal/common"
	"agency-server/internal/dto"
	"agency-server/internal/model"
	"agency-server/internal/utils"

	"gorm.io/gorm"
)

// AdminCreateUser 管理员直接建立已激活账号
func (s *Service) AdminCreateUser(req *dto.AdminCreateUserRequest) (*model.User, error) {
	exists, err := s.users.UsernameOrEmailExists(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewValidationError("用户名或邮箱已存在")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, common.NewInternalError("密码处理失败")
	}

	licenseType := req.LicenseType
	if licenseType == "" {
		licenseType = "basic"
	}

	user := &model.User{
		Username:      req.Username,
		Email:         req.Email,
		FullName:      req.FullName,
		Phone:         req.Phone,
		LicenseType:   licenseType,
		LicenseActive: true,
		Password:      hashed,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.ensureUserFolder(user)
	return user, nil
}

func (s *Service) ListUsers() ([]model.User, error) {
	return s.users.ListAll()
}

func (s *Service) GetUser(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该用户")
		}
		return nil, err
	}
	return user, nil
}

// AdminUpdateUser 管理员部分更新用户
func (s *Service) AdminUpdateUser(id uint, patch *dto.UserPatch) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(user)
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleLicense 激活或停用账号许可
func (s *Service) ToggleLicense(id uint, active bool) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	user.LicenseActive = active
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminSetPassword 管理员为用户设置密码
func (s *Service) AdminSetPassword(id uint, password string) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, common.NewInternalError("密码处理失败")
	}
	if err := s.users.UpdatePasswordByID(user.ID, hashed); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(id uint) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	return s.users.Delete(user)
}

// UpdateProfile 客户自助更新受限资料字段
func (s *Service) UpdateProfile(user *model.User, patch *dto.ProfilePatch) (*model.User, error) {
	patch.ApplyTo(user)
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
