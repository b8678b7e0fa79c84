package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	"github.com/yungbote/crm-backend/internal/data/repos"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

const HelloGreeting = "Hello, CRM!"

// QueryService answers read requests. Unknown orderBy values fall back to
// creation order instead of failing.
type QueryService interface {
	Hello(ctx context.Context) (string, error)

	Customers(ctx context.Context) ([]*types.Customer, error)
	Products(ctx context.Context) ([]*types.Product, error)
	Orders(ctx context.Context) ([]*types.Order, error)

	AllCustomers(ctx context.Context, f *filter.CustomerFilter, orderBy string) ([]*types.Customer, error)
	AllProducts(ctx context.Context, f *filter.ProductFilter, orderBy string) ([]*types.Product, error)
	AllOrders(ctx context.Context, f *filter.OrderFilter, orderBy string) ([]*types.Order, error)

	// The by-id lookups return nil, nil for unknown or malformed ids.
	Customer(ctx context.Context, id string) (*types.Customer, error)
	Product(ctx context.Context, id string) (*types.Product, error)
	Order(ctx context.Context, id string) (*types.Order, error)
}

type queryService struct {
	db        *gorm.DB
	log       *logger.Logger
	customers repos.CustomerRepo
	products  repos.ProductRepo
	orders    repos.OrderRepo
}

func NewQueryService(db *gorm.DB, log *logger.Logger, customers repos.CustomerRepo, products repos.ProductRepo, orders repos.OrderRepo) QueryService {
	serviceLog := log.With("service", "QueryService")
	return &queryService{
		db:        db,
		log:       serviceLog,
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// Hello round-trips the store before greeting, so a reply means the whole
// read path is up.
func (s *queryService) Hello(ctx context.Context) (string, error) {
	var one int
	if err := s.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return "", fmt.Errorf("store ping: %w", err)
	}
	return HelloGreeting, nil
}

func (s *queryService) Customers(ctx context.Context) ([]*types.Customer, error) {
	return s.AllCustomers(ctx, nil, "")
}

func (s *queryService) Products(ctx context.Context) ([]*types.Product, error) {
	return s.AllProducts(ctx, nil, "")
}

func (s *queryService) Orders(ctx context.Context) ([]*types.Order, error) {
	return s.AllOrders(ctx, nil, "")
}

func (s *queryService) AllCustomers(ctx context.Context, f *filter.CustomerFilter, orderBy string) ([]*types.Customer, error) {
	rows, err := s.customers.List(dbctx.Context{Ctx: ctx},
		f.Scope(),
		filter.OrderBy(orderBy, filter.CustomerOrdering, "customers"),
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return rows, nil
}

func (s *queryService) AllProducts(ctx context.Context, f *filter.ProductFilter, orderBy string) ([]*types.Product, error) {
	rows, err := s.products.List(dbctx.Context{Ctx: ctx},
		f.Scope(),
		filter.OrderBy(orderBy, filter.ProductOrdering, "products"),
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return rows, nil
}

func (s *queryService) AllOrders(ctx context.Context, f *filter.OrderFilter, orderBy string) ([]*types.Order, error) {
	rows, err := s.orders.List(dbctx.Context{Ctx: ctx},
		f.Scope(),
		filter.OrderBy(orderBy, filter.OrderOrdering, "orders"),
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return rows, nil
}

func (s *queryService) Customer(ctx context.Context, id string) (*types.Customer, error) {
	customerID, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	c, err := s.customers.GetByID(dbctx.Context{Ctx: ctx}, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (s *queryService) Product(ctx context.Context, id string) (*types.Product, error) {
	productID, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	p, err := s.products.GetByID(dbctx.Context{Ctx: ctx}, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *queryService) Order(ctx context.Context, id string) (*types.Order, error) {
	orderID, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	o, err := s.orders.GetByID(dbctx.Context{Ctx: ctx}, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}
