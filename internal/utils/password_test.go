package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$v=19$") {
		t.Fatalf("期望 PHC 格式哈希，实际为 %q", hash)
	}
	if !VerifyPassword("s3cret-password", hash) {
		t.Fatalf("期望正确密码校验通过")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Fatalf("期望错误密码校验失败")
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("期望相同密码两次哈希结果不同（随机盐）")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("期望空密码返回错误")
	}
}

func TestVerifyPassword_BadFormat(t *testing.T) {
	if VerifyPassword("whatever", "bcrypt$not$argon") {
		t.Fatalf("期望非 argon2id 格式校验失败")
	}
	if VerifyPassword("whatever", "") {
		t.Fatalf("期望空哈希校验失败")
	}
}
