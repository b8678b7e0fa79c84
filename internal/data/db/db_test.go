package db

import (
	"path/filepath"
	"testing"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

func TestPostgresDSN(t *testing.T) {
	got := PostgresDSN(Config{
		PostgresHost:     "db",
		PostgresPort:     "5433",
		PostgresUser:     "crm",
		PostgresPassword: "pw",
		PostgresName:     "crm",
	})
	want := "postgres://crm:pw@db:5433/crm?sslmode=disable"
	if got != want {
		t.Fatalf("PostgresDSN = %q, want %q", got, want)
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.db")
	svc, err := Open(logger.NewNop(), Config{Driver: "SQLite", SQLitePath: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if svc.Driver() != DriverSQLite {
		t.Fatalf("Driver = %q, want %q", svc.Driver(), DriverSQLite)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"customers", "products", "orders", "order_products"} {
		if !svc.DB().Migrator().HasTable(table) {
			t.Fatalf("expected table %s after migration", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(logger.NewNop(), Config{Driver: "mysql"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
