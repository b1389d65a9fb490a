package db

import (
	"path/filepath"
	"testing"

	"agency-server/internal/config"
	"agency-server/internal/model"
)

// 测试内容：验证使用 sqlite 临时文件初始化数据库并创建核心表。
func TestOpen_SQLiteTempFile(t *testing.T) {
	tmp := t.TempDir()
	dbFile := filepath.Join(tmp, "test.db")

	gdb, err := Open(config.DatabaseConfig{
		Type:     "sqlite",
		Filename: dbFile,
	})
	if err != nil {
		t.Fatalf("初始化数据库失败: %v", err)
	}

	if !gdb.Migrator().HasTable(&model.User{}) {
		t.Fatalf("期望 users table to exist")
	}
	if !gdb.Migrator().HasTable(&model.Booking{}) {
		t.Fatalf("期望 bookings table to exist")
	}
	if !gdb.Migrator().HasTable(&model.Setting{}) {
		t.Fatalf("期望 settings table to exist")
	}
	if !gdb.Migrator().HasTable(&model.UserDocument{}) {
		t.Fatalf("期望 user_documents table to exist")
	}

	sqlDB, err := gdb.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
