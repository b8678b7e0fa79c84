package crm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type ProductRepo interface {
	Create(dbc dbctx.Context, products []*types.Product) ([]*types.Product, error)
	// GetByIDs returns the subset of ids that exist; callers diff to find the rest.
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Product, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Product, error)
	List(dbc dbctx.Context, scopes ...Scope) ([]*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (r *productRepo) Create(dbc dbctx.Context, products []*types.Product) ([]*types.Product, error) {
	if len(products) == 0 {
		return []*types.Product{}, nil
	}
	if err := dbc.DB(r.db).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Product, error) {
	results := []*types.Product{}
	if len(ids) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Product, error) {
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *productRepo) List(dbc dbctx.Context, scopes ...Scope) ([]*types.Product, error) {
	results := []*types.Product{}
	if err := dbc.DB(r.db).
		Scopes(scopes...).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
