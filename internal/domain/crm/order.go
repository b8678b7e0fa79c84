package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order belongs to exactly one Customer. TotalAmount is a snapshot of the
// product prices at creation time and is never recomputed.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index;column:customer_id" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Products    []Product       `gorm:"many2many:order_products;" json:"products"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null;column:total_amount" json:"total_amount"`
	OrderDate   time.Time       `gorm:"not null;index;column:order_date" json:"order_date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderProductTable is the many-to-many join table between orders and products.
const OrderProductTable = "order_products"
