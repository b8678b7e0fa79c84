package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos/crm"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type Scope = crm.Scope

type CustomerRepo = crm.CustomerRepo
type ProductRepo = crm.ProductRepo
type OrderRepo = crm.OrderRepo

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return crm.NewCustomerRepo(db, baseLog)
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return crm.NewProductRepo(db, baseLog)
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return crm.NewOrderRepo(db, baseLog)
}
