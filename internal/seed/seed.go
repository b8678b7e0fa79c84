// Package seed loads the sample CRM data set. Seeding only goes through the
// mutation and query services and is safe to repeat.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Customers []CustomerFixture `yaml:"customers"`
	Products  []ProductFixture  `yaml:"products"`
	Orders    []OrderFixture    `yaml:"orders"`
}

type CustomerFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type ProductFixture struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int    `yaml:"stock"`
}

type OrderFixture struct {
	CustomerEmail string   `yaml:"customer_email"`
	Products      []string `yaml:"products"`
}

type Summary struct {
	CustomersCreated int
	ProductsCreated  int
	OrdersCreated    int
	Errors           []string
}

func DefaultFixtures() (*Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

func ParseFixtures(raw []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed fixtures: %w", err)
	}
	return &f, nil
}

type Seeder struct {
	log      *logger.Logger
	mutation services.MutationService
	query    services.QueryService
}

func NewSeeder(baseLog *logger.Logger, mutation services.MutationService, query services.QueryService) *Seeder {
	return &Seeder{
		log:      baseLog.With("component", "Seeder"),
		mutation: mutation,
		query:    query,
	}
}

// Run creates whatever part of f is missing. Customers are matched by email,
// products by name; an order is only placed for a customer with no orders.
// Rejected rows are reported in Summary.Errors and do not stop the run.
func (s *Seeder) Run(ctx context.Context, f *Fixtures) (*Summary, error) {
	sum := &Summary{}
	customers := map[string]*types.Customer{}
	products := map[string]*types.Product{}

	for _, cf := range f.Customers {
		c, created, err := s.ensureCustomer(ctx, cf, sum)
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}
		customers[c.Email] = c
		if created {
			sum.CustomersCreated++
		}
	}

	for _, pf := range f.Products {
		p, created, err := s.ensureProduct(ctx, pf, sum)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		products[p.Name] = p
		if created {
			sum.ProductsCreated++
		}
	}

	for _, of := range f.Orders {
		created, err := s.ensureOrder(ctx, of, customers, products, sum)
		if err != nil {
			return nil, err
		}
		if created {
			sum.OrdersCreated++
		}
	}

	s.log.Info("Seeding finished",
		"customers_created", sum.CustomersCreated,
		"products_created", sum.ProductsCreated,
		"orders_created", sum.OrdersCreated,
		"rejected", len(sum.Errors),
	)
	return sum, nil
}

func (s *Seeder) ensureCustomer(ctx context.Context, cf CustomerFixture, sum *Summary) (*types.Customer, bool, error) {
	email := strings.TrimSpace(cf.Email)
	rows, err := s.query.AllCustomers(ctx, &filter.CustomerFilter{Email: &email}, "")
	if err != nil {
		return nil, false, err
	}
	for _, c := range rows {
		if c.Email == email {
			return c, false, nil
		}
	}

	in := services.CustomerInput{Name: cf.Name, Email: email}
	if cf.Phone != "" {
		phone := cf.Phone
		in.Phone = &phone
	}
	res, err := s.mutation.CreateCustomer(ctx, in)
	if err != nil {
		return nil, false, err
	}
	if len(res.Errors) > 0 {
		sum.Errors = append(sum.Errors, fmt.Sprintf("customer %s: %s", email, strings.Join(res.Errors, "; ")))
		return nil, false, nil
	}
	return res.Customer, true, nil
}

func (s *Seeder) ensureProduct(ctx context.Context, pf ProductFixture, sum *Summary) (*types.Product, bool, error) {
	name := strings.TrimSpace(pf.Name)
	rows, err := s.query.AllProducts(ctx, &filter.ProductFilter{Name: &name}, "")
	if err != nil {
		return nil, false, err
	}
	for _, p := range rows {
		if p.Name == name {
			return p, false, nil
		}
	}

	stock := pf.Stock
	res, err := s.mutation.CreateProduct(ctx, services.ProductInput{Name: name, Price: pf.Price, Stock: &stock})
	if err != nil {
		return nil, false, err
	}
	if len(res.Errors) > 0 {
		sum.Errors = append(sum.Errors, fmt.Sprintf("product %s: %s", name, strings.Join(res.Errors, "; ")))
		return nil, false, nil
	}
	return res.Product, true, nil
}

func (s *Seeder) ensureOrder(ctx context.Context, of OrderFixture, customers map[string]*types.Customer, products map[string]*types.Product, sum *Summary) (bool, error) {
	customer, ok := customers[strings.TrimSpace(of.CustomerEmail)]
	if !ok {
		sum.Errors = append(sum.Errors, fmt.Sprintf("order for %s: unknown customer", of.CustomerEmail))
		return false, nil
	}

	customerID := customer.ID.String()
	existing, err := s.query.AllOrders(ctx, &filter.OrderFilter{CustomerID: &customerID}, "")
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	ids := make([]string, 0, len(of.Products))
	for _, name := range of.Products {
		p, ok := products[strings.TrimSpace(name)]
		if !ok {
			sum.Errors = append(sum.Errors, fmt.Sprintf("order for %s: unknown product %s", of.CustomerEmail, name))
			return false, nil
		}
		ids = append(ids, p.ID.String())
	}

	res, err := s.mutation.CreateOrder(ctx, services.OrderInput{CustomerID: customerID, ProductIDs: ids})
	if err != nil {
		return false, err
	}
	if len(res.Errors) > 0 {
		sum.Errors = append(sum.Errors, fmt.Sprintf("order for %s: %s", of.CustomerEmail, strings.Join(res.Errors, "; ")))
		return false, nil
	}
	return true, nil
}
