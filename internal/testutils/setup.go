package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"agency-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing
// and performs auto-migration over the full model set.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:agency_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Booking{},
		&model.GalleryImage{},
		&model.UserDocument{},
		&model.Setting{},
		&model.CalendarEvent{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return gdb
}
