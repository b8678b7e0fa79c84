package crm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type OrderRepo interface {
	// Create inserts the order row and one order_products row per product.
	// Products must already exist; they are never upserted.
	Create(dbc dbctx.Context, order *types.Order) error
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Order, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Order, error)
	List(dbc dbctx.Context, scopes ...Scope) ([]*types.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (r *orderRepo) Create(dbc dbctx.Context, order *types.Order) error {
	if order == nil {
		return nil
	}
	return dbc.DB(r.db).
		Omit("Customer", "Products.*").
		Create(order).Error
}

func (r *orderRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Order, error) {
	results := []*types.Order{}
	if len(ids) == 0 {
		return results, nil
	}
	if err := r.withAssociations(dbc.DB(r.db)).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *orderRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Order, error) {
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *orderRepo) List(dbc dbctx.Context, scopes ...Scope) ([]*types.Order, error) {
	results := []*types.Order{}
	if err := r.withAssociations(dbc.DB(r.db)).
		Scopes(scopes...).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *orderRepo) withAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Customer").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.created_at ASC, products.id ASC")
		})
}
