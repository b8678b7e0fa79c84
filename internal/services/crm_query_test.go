package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
)

func boolPtr(v bool) *bool { return &v }

func TestHello(t *testing.T) {
	f := newCRMFixture(t, nil)
	got, err := f.query.Hello(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hello, CRM!", got)
}

func TestAllProductsLowStock(t *testing.T) {
	f := newCRMFixture(t, nil)
	ctx := context.Background()
	for _, in := range []ProductInput{
		{Name: "Laptop", Price: "999.99", Stock: intPtr(10)},
		{Name: "Cable", Price: "4.50", Stock: intPtr(9)},
		{Name: "Mouse", Price: "19.99", Stock: intPtr(200)},
	} {
		_, err := f.mutation.CreateProduct(ctx, in)
		require.NoError(t, err)
	}

	rows, err := f.query.AllProducts(ctx, &filter.ProductFilter{LowStock: boolPtr(true)}, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Cable", rows[0].Name)

	rows, err = f.query.AllProducts(ctx, nil, "-price")
	require.NoError(t, err)
	require.Equal(t, []string{"Laptop", "Mouse", "Cable"}, productNames(rows))
}

func productNames(rows []*types.Product) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestAllOrdersProductNameReturnsEachOrderOnce(t *testing.T) {
	f := newCRMFixture(t, nil)
	ctx := context.Background()

	c, err := f.mutation.CreateCustomer(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	var ids []string
	for _, in := range []ProductInput{
		{Name: "Laptop", Price: "999.99"},
		{Name: "Laptop Sleeve", Price: "29.00"},
		{Name: "Mouse", Price: "19.99"},
	} {
		p, err := f.mutation.CreateProduct(ctx, in)
		require.NoError(t, err)
		ids = append(ids, p.Product.ID.String())
	}
	both, err := f.mutation.CreateOrder(ctx, OrderInput{CustomerID: c.Customer.ID.String(), ProductIDs: ids[:2]})
	require.NoError(t, err)
	_, err = f.mutation.CreateOrder(ctx, OrderInput{CustomerID: c.Customer.ID.String(), ProductIDs: ids[2:]})
	require.NoError(t, err)

	rows, err := f.query.AllOrders(ctx, &filter.OrderFilter{ProductName: strPtr("LAPTOP")}, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, both.Order.ID, rows[0].ID)
	require.Len(t, rows[0].Products, 2)
	require.Equal(t, "Alice", rows[0].Customer.Name)
}

func TestAllCustomersUnknownOrderByFallsBack(t *testing.T) {
	f := newCRMFixture(t, nil)
	ctx := context.Background()
	for _, in := range []CustomerInput{
		{Name: "Zed", Email: "zed@example.com"},
		{Name: "Amy", Email: "amy@example.com"},
	} {
		_, err := f.mutation.CreateCustomer(ctx, in)
		require.NoError(t, err)
	}

	byName, err := f.query.AllCustomers(ctx, nil, "name")
	require.NoError(t, err)
	require.Equal(t, "Amy", byName[0].Name)

	fallback, err := f.query.AllCustomers(ctx, nil, "password; DROP TABLE customers")
	require.NoError(t, err)
	require.Len(t, fallback, 2)

	plain, err := f.query.Customers(ctx)
	require.NoError(t, err)
	require.Equal(t, customerIDs(plain), customerIDs(fallback))

	filtered, err := f.query.AllCustomers(ctx, &filter.CustomerFilter{Email: strPtr("AMY@")}, "")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
}

func customerIDs(rows []*types.Customer) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestGetByID(t *testing.T) {
	f := newCRMFixture(t, nil)
	ctx := context.Background()
	customer, p1, _ := seedCatalog(t, f)

	c, err := f.query.Customer(ctx, customer.ID.String())
	require.NoError(t, err)
	require.Equal(t, customer.Email, c.Email)

	p, err := f.query.Product(ctx, p1.ID.String())
	require.NoError(t, err)
	require.Equal(t, "P1", p.Name)

	for _, id := range []string{"", "garbage", uuid.New().String()} {
		c, err := f.query.Customer(ctx, id)
		require.NoError(t, err)
		require.Nil(t, c)
		o, err := f.query.Order(ctx, id)
		require.NoError(t, err)
		require.Nil(t, o)
	}
}
