package crm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func TestCustomerRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCustomerRepo(db, testutil.Logger(t))

	phone := "+1234567890"
	alice := &types.Customer{Name: "Alice", Email: "alice@example.com", Phone: &phone}
	if _, err := repo.Create(dbc, []*types.Customer{alice}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if alice.ID == uuid.Nil {
		t.Fatalf("Create did not assign an id")
	}

	if got, err := repo.GetByID(dbc, alice.ID); err != nil || got == nil || got.Email != alice.Email {
		t.Fatalf("GetByID: err=%v got=%v", err, got)
	}
	if got, err := repo.GetByID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID(missing): err=%v got=%v", err, got)
	}

	if ok, err := repo.EmailExists(dbc, "alice@example.com"); err != nil || !ok {
		t.Fatalf("EmailExists(alice): ok=%v err=%v", ok, err)
	}
	if ok, err := repo.EmailExists(dbc, "bob@example.com"); err != nil || ok {
		t.Fatalf("EmailExists(bob): ok=%v err=%v", ok, err)
	}

	dup := &types.Customer{Name: "Alice 2", Email: "alice@example.com"}
	sp := tx.SavePoint("dup")
	if sp.Error != nil {
		t.Fatalf("savepoint: %v", sp.Error)
	}
	_, err := repo.Create(dbc, []*types.Customer{dup})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key error, got %v", err)
	}
	if err := tx.RollbackTo("dup").Error; err != nil {
		t.Fatalf("rollback to savepoint: %v", err)
	}

	if rows, err := repo.List(dbc, func(q *gorm.DB) *gorm.DB { return q.Order("name ASC") }); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
}

func TestCustomerRepoDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCustomerRepo(db, testutil.Logger(t))

	alice := testutil.SeedCustomer(t, ctx, tx, "Alice", "alice@example.com")
	bob := testutil.SeedCustomer(t, ctx, tx, "Bob", "bob@example.com")
	laptop := testutil.SeedProduct(t, ctx, tx, "Laptop", "999.99", 10)
	testutil.SeedOrder(t, ctx, tx, alice, time.Now(), laptop)
	bobOrder := testutil.SeedOrder(t, ctx, tx, bob, time.Now(), laptop)

	ok, err := repo.Delete(dbc, alice.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}

	var orders []types.Order
	if err := tx.Find(&orders).Error; err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != bobOrder.ID {
		t.Fatalf("expected only bob's order to survive, got %+v", orders)
	}
	var links int64
	if err := tx.Table(types.OrderProductTable).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 1 {
		t.Fatalf("expected 1 order_products row, got %d", links)
	}
	var products int64
	if err := tx.Model(&types.Product{}).Count(&products).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if products != 1 {
		t.Fatalf("products must not be deleted, got %d", products)
	}

	if ok, err := repo.Delete(dbc, alice.ID); err != nil || ok {
		t.Fatalf("second Delete: ok=%v err=%v", ok, err)
	}
}
