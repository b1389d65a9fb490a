package service

import (
	"errors"
	"time"

	"agency-server/internal/common"
	"agency-server/internal/config"
	"agency-server/internal/model"
	"agency-server/internal/utils"

	"gorm.io/gorm"
)

// Login 校验邮箱密码并签发登录令牌
// 凭证错误统一返回 401，账号未激活返回 403
func (s *Service) Login(email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, common.NewUnauthorizedError("邮箱或密码错误")
		}
		return "", nil, err
	}

	if user.Password == "" {
		return "", nil, common.NewUnauthorizedError("该账号尚未设置密码，请联系管理员")
	}

	if !utils.VerifyPassword(password, user.Password) {
		return "", nil, common.NewUnauthorizedError("邮箱或密码错误")
	}

	if !user.LicenseActive {
		return "", nil, common.NewForbiddenError("账号未激活，请联系管理员")
	}

	if err := s.users.UpdateLastLogin(user.ID); err != nil {
		return "", nil, err
	}
	now := time.Now()
	user.LastLogin = &now

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.Email, time.Minute*time.Duration(cfg.JWT.ExpirationMinutes))
	if err != nil {
		return "", nil, common.NewInternalError("登录失败，请稍后重试")
	}

	return token, user, nil
}

// ResolveActiveUser 按令牌主体邮箱逐请求重查用户并校验激活状态，不做任何缓存
func (s *Service) ResolveActiveUser(email string) (*model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("无法验证登录凭证")
		}
		return nil, err
	}
	if !user.LicenseActive {
		return nil, common.NewForbiddenError("账号未激活，请联系管理员")
	}
	return user, nil
}

// ChangePassword 客户自助改密，需先验证旧密码
func (s *Service) ChangePassword(user *model.User, oldPassword, newPassword string) error {
	if user.Password == "" {
		return common.NewValidationError("该账号尚未设置密码，请联系管理员")
	}
	if !utils.VerifyPassword(oldPassword, user.Password) {
		return common.NewValidationError("当前密码错误")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return common.NewInternalError("密码更新失败")
	}
	return s.users.UpdatePasswordByID(user.ID, hashed)
}
