package db

import (
	"fmt"

	"github.com/yungbote/crm-backend/internal/domain/crm"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&crm.Customer{},
		&crm.Product{},
		&crm.Order{},
	)
}

func (s *Service) AutoMigrateAll() error {
	if err := AutoMigrateAll(s.db); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := EnsureIndexes(s.db); err != nil {
		return err
	}
	return nil
}

// EnsureIndexes adds the lookup indexes the filter engine leans on.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_order_products_product_id", `CREATE INDEX IF NOT EXISTS idx_order_products_product_id ON order_products (product_id);`},
		{"idx_products_stock", `CREATE INDEX IF NOT EXISTS idx_products_stock ON products (stock);`},
	}
	for _, st := range stmts {
		if err := db.Exec(st.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", st.name, err)
		}
	}
	return nil
}
