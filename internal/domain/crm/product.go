package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold is the stock count below which a product needs restocking.
const LowStockThreshold = 10

type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `gorm:"not null;column:name" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;column:price" json:"price"`
	Stock     int             `gorm:"not null;column:stock" json:"stock"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p Product) LowStock() bool { return p.Stock < LowStockThreshold }
