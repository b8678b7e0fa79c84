package crm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type Scope = func(*gorm.DB) *gorm.DB

type CustomerRepo interface {
	Create(dbc dbctx.Context, customers []*types.Customer) ([]*types.Customer, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Customer, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Customer, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
	List(dbc dbctx.Context, scopes ...Scope) ([]*types.Customer, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (r *customerRepo) Create(dbc dbctx.Context, customers []*types.Customer) ([]*types.Customer, error) {
	if len(customers) == 0 {
		return []*types.Customer{}, nil
	}
	if err := dbc.DB(r.db).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Customer, error) {
	results := []*types.Customer{}
	if len(ids) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID returns nil without error when no customer has the id.
func (r *customerRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Customer, error) {
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *customerRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	var count int64
	if err := dbc.DB(r.db).
		Model(&types.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *customerRepo) List(dbc dbctx.Context, scopes ...Scope) ([]*types.Customer, error) {
	results := []*types.Customer{}
	if err := dbc.DB(r.db).
		Scopes(scopes...).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Delete removes the customer together with their orders and order lines.
// It reports false when the customer did not exist.
func (r *customerRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	deleted := false
	run := func(tx *gorm.DB) error {
		orderIDs := tx.Model(&types.Order{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Exec("DELETE FROM "+types.OrderProductTable+" WHERE order_id IN (?)", orderIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&types.Order{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&types.Customer{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	}

	var err error
	if dbc.Tx != nil {
		err = run(dbc.DB(r.db))
	} else {
		err = dbc.DB(r.db).Transaction(run)
	}
	if err != nil {
		return false, err
	}
	return deleted, nil
}
