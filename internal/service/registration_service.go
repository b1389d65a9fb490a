package service

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"agency-server/internal/common"
	"agency-server/internal/config"
	"agency-server/internal/consts"
	"agency-server/internal/dto"
	"agency-server/internal/model"
	"agency-server/internal/utils"

	"gorm.io/gorm"
)

// RegisterStart 注册第一步：按邮箱建档，用户名取邮箱本地部分
func (s *Service) RegisterStart(req *dto.RegisterStartRequest) (*model.User, error) {
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewValidationError("该邮箱已注册")
	}

	username := utils.UsernameFromEmail(req.Email)
	user := &model.User{
		Username:           username,
		Email:              req.Email,
		FullName:           strings.TrimSpace(req.FirstName + " " + req.LastName),
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Nationality:        req.Nationality,
		ExperienceYears:    req.ExperienceYears,
		PreviousRoles:      req.PreviousRoles,
		Skills:             req.Skills,
		PreferredCountry:   req.PreferredCountry,
		PreferredCity:      req.PreferredCity,
		CurrentStep:        1,
		RegistrationStatus: consts.RegistrationInProgress,
		LicenseActive:      false, // 管理员审核后才激活
		LicenseType:        "basic",
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.ensureUserFolder(user)
	return user, nil
}

// RegisterUpdate 注册向导的部分更新，不校验步骤顺序
func (s *Service) RegisterUpdate(id uint, patch *dto.UserPatch) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该注册记录")
		}
		return nil, err
	}

	patch.ApplyTo(user)
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AttachRegistrationDocument 保存注册文件（CV 或付款凭证）并推进到第 5 步
func (s *Service) AttachRegistrationDocument(userID uint, category, filename, contentType string, data []byte) (*model.UserDocument, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("未找到该注册记录")
		}
		return nil, err
	}

	description := "User CV"
	if category == consts.DocumentCategoryPayment {
		description = "User Payment"
	}

	doc := &model.UserDocument{
		UserID:           userID,
		Filename:         filename,
		OriginalFilename: filename,
		FileType:         contentType,
		FileSize:         int64(len(data)),
		FileData:         data,
		Category:         category,
		Description:      description,
	}
	if err := s.documents.Create(doc); err != nil {
		return nil, err
	}

	user.CurrentStep = 5
	user.RegistrationStatus = consts.RegistrationSubmitted
	if err := s.users.Save(user); err != nil {
		return nil, err
	}

	return doc, nil
}

// ensureUserFolder 在数据根目录下建立用户专属目录并回写路径
func (s *Service) ensureUserFolder(user *model.User) {
	root := config.Get().UserData.Path
	if root == "" {
		return
	}
	folder := filepath.Join(root, fmt.Sprintf("user_%d_%s", user.ID, user.Username))
	if err := os.MkdirAll(folder, 0755); err != nil {
		log.Printf("⚠️ 创建用户目录失败: %v", err)
		return
	}
	user.UserFolder = folder
	if err := s.users.Save(user); err != nil {
		log.Printf("⚠️ 回写用户目录失败: %v", err)
	}
}
