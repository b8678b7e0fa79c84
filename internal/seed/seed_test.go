package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/services"
)

func newSeeder(t *testing.T) (*Seeder, services.QueryService) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	customers := repos.NewCustomerRepo(db, log)
	products := repos.NewProductRepo(db, log)
	orders := repos.NewOrderRepo(db, log)
	mutation := services.NewMutationService(services.MutationDeps{
		DB:        db,
		Log:       log,
		Customers: customers,
		Products:  products,
		Orders:    orders,
	})
	query := services.NewQueryService(db, log, customers, products, orders)
	return NewSeeder(log, mutation, query), query
}

func TestDefaultFixtures(t *testing.T) {
	f, err := DefaultFixtures()
	require.NoError(t, err)
	require.Len(t, f.Customers, 2)
	require.Len(t, f.Products, 2)
	require.Len(t, f.Orders, 1)
	require.Equal(t, "+1234567890", f.Customers[0].Phone)
	require.Equal(t, "999.99", f.Products[0].Price)
}

func TestSeedIsIdempotent(t *testing.T) {
	s, query := newSeeder(t)
	ctx := context.Background()
	f, err := DefaultFixtures()
	require.NoError(t, err)

	first, err := s.Run(ctx, f)
	require.NoError(t, err)
	require.Equal(t, &Summary{CustomersCreated: 2, ProductsCreated: 2, OrdersCreated: 1}, first)

	second, err := s.Run(ctx, f)
	require.NoError(t, err)
	require.Equal(t, &Summary{}, second)

	orders, err := query.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "alice@example.com", orders[0].Customer.Email)
	require.True(t, orders[0].TotalAmount.Equal(decimal.RequireFromString("1019.98")))
}

func TestSeedReportsRejectedRows(t *testing.T) {
	s, _ := newSeeder(t)
	f, err := ParseFixtures([]byte(`
customers:
  - name: Carol
    email: carol@example.com
    phone: "not-a-phone"
products:
  - name: Free
    price: "0"
orders:
  - customer_email: carol@example.com
    products: [Free]
`))
	require.NoError(t, err)

	sum, err := s.Run(context.Background(), f)
	require.NoError(t, err)
	require.Zero(t, sum.CustomersCreated)
	require.Zero(t, sum.ProductsCreated)
	require.Len(t, sum.Errors, 3)
}
