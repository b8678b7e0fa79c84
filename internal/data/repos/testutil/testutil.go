// Package testutil provides per-test sqlite stores and seed helpers.
//
// Tests under platform/, data/, clients/ and http/middleware assert with
// t.Fatalf; tests for services, crm rules, jobs, seed, observability, app and
// the HTTP router use testify require.
package testutil

import (
	"fmt"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	storedb "github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

var (
	dbSeq      atomic.Int64
	unsafeName = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

// DB returns a fresh, migrated in-memory sqlite store private to the calling test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := fmt.Sprintf("%s_%d", unsafeName.ReplaceAllString(tb.Name(), "_"), dbSeq.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := storedb.AutoMigrateAll(db); err != nil {
		tb.Fatalf("automigrate: %v", err)
	}
	if err := storedb.EnsureIndexes(db); err != nil {
		tb.Fatalf("ensure indexes: %v", err)
	}
	return db
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
