package aggregates

import (
	"context"
	"errors"

	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"gorm.io/gorm"
)

// TxRunner provides the transaction boundary primitive for multi-row writes.
type TxRunner interface {
	// InTx runs fn inside one transaction; fn's error rolls everything back.
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
	// InSavepoint runs fn in a nested scope of dbc.Tx. An error from fn rolls
	// back only that scope and is returned; the enclosing transaction stays usable.
	InSavepoint(dbc dbctx.Context, fn func(dbc dbctx.Context) error) error
}

var errNilDB = errors.New("transaction runner has nil db")

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
// Nested GORM transactions are issued as SAVEPOINT / ROLLBACK TO SAVEPOINT.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return Wrap(CodeInternal, "aggregate.tx", errNilDB)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

func (r *gormTxRunner) InSavepoint(dbc dbctx.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if dbc.Tx == nil {
		return r.InTx(dbc.Ctx, fn)
	}
	return dbc.DB(dbc.Tx).Transaction(func(sp *gorm.DB) error {
		return fn(dbctx.Context{Ctx: dbc.Ctx, Tx: sp})
	})
}
