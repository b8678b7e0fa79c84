package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/aggregates"
	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// MutationService owns every CRM write. Rule violations come back inside the
// result's Errors; a returned error means the store itself failed.
type MutationService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*CreateCustomerResult, error)
	BulkCreateCustomers(ctx context.Context, in []CustomerInput) (*BulkCreateCustomersResult, error)
	DeleteCustomer(ctx context.Context, id string) (bool, error)
	CreateProduct(ctx context.Context, in ProductInput) (*CreateProductResult, error)
	CreateOrder(ctx context.Context, in OrderInput) (*CreateOrderResult, error)
}

type MutationDeps struct {
	DB        *gorm.DB
	Log       *logger.Logger
	Runner    aggregates.TxRunner
	Customers repos.CustomerRepo
	Products  repos.ProductRepo
	Orders    repos.OrderRepo
	Observer  MutationObserver
	Now       func() time.Time
}

type mutationService struct {
	db        *gorm.DB
	log       *logger.Logger
	runner    aggregates.TxRunner
	customers repos.CustomerRepo
	products  repos.ProductRepo
	orders    repos.OrderRepo
	observer  MutationObserver
	now       func() time.Time
}

func NewMutationService(deps MutationDeps) MutationService {
	serviceLog := deps.Log.With("service", "MutationService")
	runner := deps.Runner
	if runner == nil {
		runner = aggregates.NewGormTxRunner(deps.DB)
	}
	observer := deps.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &mutationService{
		db:        deps.DB,
		log:       serviceLog,
		runner:    runner,
		customers: deps.Customers,
		products:  deps.Products,
		orders:    deps.Orders,
		observer:  observer,
		now:       now,
	}
}

func trim(s string) string { return strings.TrimSpace(s) }

func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(trim(raw))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
