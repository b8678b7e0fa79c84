// Package filter turns caller-supplied criteria into gorm scopes over the
// CRM tables. Every criterion is optional; a nil filter or a blank field
// places no constraint.
package filter

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain/crm"
)

type Scope = func(*gorm.DB) *gorm.DB

func identity(db *gorm.DB) *gorm.DB { return db }

// CustomerFilter narrows the customer set. Name, Email and PhonePattern are
// case-insensitive substring matches.
type CustomerFilter struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	CreatedAtGte *time.Time `json:"created_at__gte,omitempty"`
	CreatedAtLte *time.Time `json:"created_at__lte,omitempty"`
	PhonePattern *string    `json:"phone_pattern,omitempty"`
}

func (f *CustomerFilter) Scope() Scope {
	if f == nil {
		return identity
	}
	return func(db *gorm.DB) *gorm.DB {
		db = iContains(db, "customers.name", f.Name)
		db = iContains(db, "customers.email", f.Email)
		db = iContains(db, "customers.phone", f.PhonePattern)
		db = timeRange(db, "customers.created_at", f.CreatedAtGte, f.CreatedAtLte)
		return db
	}
}

type ProductFilter struct {
	Name     *string          `json:"name,omitempty"`
	PriceGte *decimal.Decimal `json:"price__gte,omitempty"`
	PriceLte *decimal.Decimal `json:"price__lte,omitempty"`
	Stock    *int             `json:"stock,omitempty"`
	StockGte *int             `json:"stock__gte,omitempty"`
	StockLte *int             `json:"stock__lte,omitempty"`
	// LowStock=true keeps products under crm.LowStockThreshold; false is no constraint.
	LowStock *bool `json:"low_stock,omitempty"`
}

func (f *ProductFilter) Scope() Scope {
	if f == nil {
		return identity
	}
	return func(db *gorm.DB) *gorm.DB {
		db = iContains(db, "products.name", f.Name)
		if f.PriceGte != nil {
			db = db.Where("products.price >= ?", *f.PriceGte)
		}
		if f.PriceLte != nil {
			db = db.Where("products.price <= ?", *f.PriceLte)
		}
		if f.Stock != nil {
			db = db.Where("products.stock = ?", *f.Stock)
		}
		if f.StockGte != nil {
			db = db.Where("products.stock >= ?", *f.StockGte)
		}
		if f.StockLte != nil {
			db = db.Where("products.stock <= ?", *f.StockLte)
		}
		if f.LowStock != nil && *f.LowStock {
			db = db.Where("products.stock < ?", crm.LowStockThreshold)
		}
		return db
	}
}

// OrderFilter narrows orders. CustomerName and ProductName match through the
// related rows; an order matching several products is still returned once.
type OrderFilter struct {
	TotalAmountGte *decimal.Decimal `json:"total_amount__gte,omitempty"`
	TotalAmountLte *decimal.Decimal `json:"total_amount__lte,omitempty"`
	OrderDateGte   *time.Time       `json:"order_date__gte,omitempty"`
	OrderDateLte   *time.Time       `json:"order_date__lte,omitempty"`
	CustomerName   *string          `json:"customer_name,omitempty"`
	CustomerID     *string          `json:"customer_id,omitempty"`
	ProductName    *string          `json:"product_name,omitempty"`
	ProductID      *string          `json:"product_id,omitempty"`
}

func (f *OrderFilter) Scope() Scope {
	if f == nil {
		return identity
	}
	return func(db *gorm.DB) *gorm.DB {
		if f.TotalAmountGte != nil {
			db = db.Where("orders.total_amount >= ?", *f.TotalAmountGte)
		}
		if f.TotalAmountLte != nil {
			db = db.Where("orders.total_amount <= ?", *f.TotalAmountLte)
		}
		db = timeRange(db, "orders.order_date", f.OrderDateGte, f.OrderDateLte)
		if pattern, ok := likePattern(f.CustomerName); ok {
			db = db.Where(
				"orders.customer_id IN (SELECT c.id FROM customers c WHERE LOWER(c.name) LIKE ? ESCAPE '\\')",
				pattern,
			)
		}
		if f.CustomerID != nil && strings.TrimSpace(*f.CustomerID) != "" {
			db = exactUUID(db, "orders.customer_id = ?", *f.CustomerID)
		}
		if pattern, ok := likePattern(f.ProductName); ok {
			db = db.Where(
				"orders.id IN (SELECT op.order_id FROM "+crm.OrderProductTable+" op JOIN products p ON p.id = op.product_id WHERE LOWER(p.name) LIKE ? ESCAPE '\\')",
				pattern,
			)
		}
		if f.ProductID != nil && strings.TrimSpace(*f.ProductID) != "" {
			db = exactUUID(db, "orders.id IN (SELECT op.order_id FROM "+crm.OrderProductTable+" op WHERE op.product_id = ?)", *f.ProductID)
		}
		return db
	}
}

func iContains(db *gorm.DB, column string, value *string) *gorm.DB {
	pattern, ok := likePattern(value)
	if !ok {
		return db
	}
	return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
}

func likePattern(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return "", false
	}
	return "%" + escapeLike(strings.ToLower(v)) + "%", true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func timeRange(db *gorm.DB, column string, gte, lte *time.Time) *gorm.DB {
	if gte != nil {
		db = db.Where(column+" >= ?", gte.UTC())
	}
	if lte != nil {
		db = db.Where(column+" <= ?", lte.UTC())
	}
	return db
}

// An id that does not parse cannot match any row.
func exactUUID(db *gorm.DB, clause, raw string) *gorm.DB {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return db.Where("1 = 0")
	}
	return db.Where(clause, id)
}
