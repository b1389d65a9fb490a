package service

import (
	"testing"

	"agency-server/internal/common"
	"agency-server/internal/consts"
	"agency-server/internal/dto"
)

// 测试内容：注册第一步创建档案并初始化向导状态。
func TestRegisterStart_CreatesInProgressUser(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.RegisterStart(&dto.RegisterStartRequest{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "+49123456",
	})
	if err != nil {
		t.Fatalf("RegisterStart error: %v", err)
	}

	if user.Username != "alice" {
		t.Fatalf("期望用户名取邮箱本地部分 alice，实际为 %q", user.Username)
	}
	if user.FullName != "Alice Smith" {
		t.Fatalf("期望 FullName 为 Alice Smith，实际为 %q", user.FullName)
	}
	if user.CurrentStep != 1 {
		t.Fatalf("期望 current_step 为 1，实际为 %d", user.CurrentStep)
	}
	if user.RegistrationStatus != consts.RegistrationInProgress {
		t.Fatalf("期望注册状态 in_progress，实际为 %q", user.RegistrationStatus)
	}
	if user.LicenseActive {
		t.Fatalf("期望新注册账号未激活")
	}
	if user.UserFolder == "" {
		t.Fatalf("期望已分配用户目录")
	}
}

// 测试内容：重复邮箱注册返回校验错误（对应 400）。
func TestRegisterStart_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := &dto.RegisterStartRequest{Email: "dup@example.com"}
	if _, err := svc.RegisterStart(req); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}

	_, err := svc.RegisterStart(req)
	if err == nil {
		t.Fatalf("期望重复邮箱注册失败")
	}
	serr, ok := common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误，实际为 %v", err)
	}
}

// 测试内容：向导中间步骤只更新请求携带的字段。
func TestRegisterUpdate_MergesFields(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.RegisterStart(&dto.RegisterStartRequest{
		Email: "bob@example.com",
		Phone: "+3312345",
	})
	if err != nil {
		t.Fatalf("RegisterStart error: %v", err)
	}

	skills := "welding"
	step := 3
	updated, err := svc.RegisterUpdate(user.ID, &dto.UserPatch{
		Skills:      &skills,
		CurrentStep: &step,
	})
	if err != nil {
		t.Fatalf("RegisterUpdate error: %v", err)
	}

	if updated.Skills != "welding" || updated.CurrentStep != 3 {
		t.Fatalf("期望补丁字段生效，实际为 %+v", updated)
	}
	if updated.Phone != "+3312345" {
		t.Fatalf("期望未携带字段保持不变，实际 phone 为 %q", updated.Phone)
	}
}

// 测试内容：更新不存在的注册记录返回 not_found。
func TestRegisterUpdate_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterUpdate(9999, &dto.UserPatch{})
	serr, ok := common.AsServiceError(err)
	if !ok || serr.Code != common.ErrorCodeNotFound {
		t.Fatalf("期望 not_found 错误，实际为 %v", err)
	}
}

// 测试内容：上传简历后文档入库且向导推进到第 5 步、状态变为 submitted。
func TestAttachRegistrationDocument_SubmitsWizard(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.RegisterStart(&dto.RegisterStartRequest{Email: "carol@example.com"})
	if err != nil {
		t.Fatalf("RegisterStart error: %v", err)
	}

	data := []byte("%PDF-1.4 fake cv")
	doc, err := svc.AttachRegistrationDocument(user.ID, consts.DocumentCategoryCV, "cv.pdf", "application/pdf", data)
	if err != nil {
		t.Fatalf("AttachRegistrationDocument error: %v", err)
	}

	if doc.Category != consts.DocumentCategoryCV || doc.Filename != "cv.pdf" {
		t.Fatalf("期望文档分类 cv 且保留原文件名，实际为 %+v", doc)
	}
	if doc.FileSize != int64(len(data)) {
		t.Fatalf("期望文件大小 %d，实际为 %d", len(data), doc.FileSize)
	}

	reloaded, err := svc.GetUser(user.ID)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if reloaded.CurrentStep != 5 {
		t.Fatalf("期望 current_step 为 5，实际为 %d", reloaded.CurrentStep)
	}
	if reloaded.RegistrationStatus != consts.RegistrationSubmitted {
		t.Fatalf("期望注册状态 submitted，实际为 %q", reloaded.RegistrationStatus)
	}

	docs, err := svc.ListUserDocuments(user.ID)
	if err != nil {
		t.Fatalf("ListUserDocuments error: %v", err)
	}
	if len(docs) != 1 || docs[0].Filename != "cv.pdf" {
		t.Fatalf("期望文档列表包含 cv.pdf，实际为 %+v", docs)
	}
}

// 测试内容：付款凭证上传使用 payment 分类与对应描述。
func TestAttachRegistrationDocument_Payment(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.RegisterStart(&dto.RegisterStartRequest{Email: "dave@example.com"})
	if err != nil {
		t.Fatalf("RegisterStart error: %v", err)
	}

	doc, err := svc.AttachRegistrationDocument(user.ID, consts.DocumentCategoryPayment, "receipt.jpg", "image/jpeg", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("AttachRegistrationDocument error: %v", err)
	}
	if doc.Category != consts.DocumentCategoryPayment || doc.Description != "User Payment" {
		t.Fatalf("期望 payment 分类，实际为 %+v", doc)
	}
}
