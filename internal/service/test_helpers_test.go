package service

import (
	"testing"

	"agency-server/internal/config"
	"agency-server/internal/repository"
	"agency-server/internal/testutils"

	"gorm.io/gorm"
)

// newTestService 构建基于内存数据库的服务实例，数据目录指向临时目录
func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	t.Setenv("AGENCY_SERVER_MODE", "debug")
	t.Setenv("AGENCY_USER_DATA_PATH", t.TempDir())
	t.Setenv("AGENCY_STATIC_PATH", t.TempDir())
	config.InitConfig(t.TempDir())

	gdb := testutils.SetupDB(t)
	return NewService(repository.NewRepositories(gdb)), gdb
}
