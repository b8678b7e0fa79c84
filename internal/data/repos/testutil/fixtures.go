package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain/crm"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *crm.Customer {
	tb.Helper()
	c := &crm.Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, price string, stock int) *crm.Product {
	tb.Helper()
	p := &crm.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customer *crm.Customer, orderDate time.Time, products ...*crm.Product) *crm.Order {
	tb.Helper()
	total := decimal.Zero
	items := make([]crm.Product, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		items = append(items, *p)
	}
	o := &crm.Order{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		Products:    items,
		TotalAmount: total,
		OrderDate:   orderDate,
	}
	if err := tx.WithContext(ctx).Omit("Products.*").Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}

func PtrString(v string) *string { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
