package crm

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func TestOrderRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewOrderRepo(db, testutil.Logger(t))

	alice := testutil.SeedCustomer(t, ctx, tx, "Alice", "alice@example.com")
	a := testutil.SeedProduct(t, ctx, tx, "A", "10.00", 5)
	b := testutil.SeedProduct(t, ctx, tx, "B", "5.50", 5)

	order := &types.Order{
		CustomerID:  alice.ID,
		Customer:    alice,
		Products:    []types.Product{*a, *b},
		TotalAmount: a.Price.Add(b.Price),
		OrderDate:   time.Now().UTC(),
	}
	if err := repo.Create(dbc, order); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.ID == uuid.Nil {
		t.Fatalf("Create did not assign an id")
	}

	var productCount int64
	if err := tx.Model(&types.Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if productCount != 2 {
		t.Fatalf("order create must not insert products, got %d", productCount)
	}

	got, err := repo.GetByID(dbc, order.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if got.Customer == nil || got.Customer.ID != alice.ID {
		t.Fatalf("customer not preloaded: %+v", got.Customer)
	}
	if len(got.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got.Products))
	}
	if !got.TotalAmount.Equal(decimal.RequireFromString("15.50")) {
		t.Fatalf("total = %s, want 15.50", got.TotalAmount)
	}

	if rows, err := repo.List(dbc); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	if got, err := repo.GetByID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID(missing): err=%v got=%v", err, got)
	}
}
