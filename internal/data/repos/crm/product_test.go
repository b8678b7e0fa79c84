package crm

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func TestProductRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProductRepo(db, testutil.Logger(t))

	mouse := &types.Product{Name: "Mouse", Price: decimal.RequireFromString("19.99"), Stock: 200}
	laptop := &types.Product{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10}
	if _, err := repo.Create(dbc, []*types.Product{mouse, laptop}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.GetByIDs(dbc, []uuid.UUID{mouse.ID, uuid.New(), laptop.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("GetByIDs should return only existing rows, got %d", len(rows))
	}

	got, err := repo.GetByID(dbc, laptop.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if !got.Price.Equal(decimal.RequireFromString("999.99")) {
		t.Fatalf("price round trip: got %s", got.Price)
	}
	if got, err := repo.GetByID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID(missing): err=%v got=%v", err, got)
	}

	all, err := repo.List(dbc)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(all))
	}
}
