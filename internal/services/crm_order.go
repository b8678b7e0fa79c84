package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/crm/validation"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

// CreateOrder checks the customer, then the product list, stopping at the
// first problem. The total is the exact decimal sum of the distinct products.
func (s *mutationService) CreateOrder(ctx context.Context, in OrderInput) (*CreateOrderResult, error) {
	dbc := dbctx.Context{Ctx: ctx}
	reject := func(msg string) (*CreateOrderResult, error) {
		s.observer.MutationFinished("create_order", OutcomeRejected)
		return &CreateOrderResult{Errors: []string{msg}}, nil
	}
	fail := func(op string, err error) (*CreateOrderResult, error) {
		s.log.Error("Create order failed", "op", op, "error", err)
		s.observer.MutationFinished("create_order", OutcomeFailed)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	customerID, ok := parseID(in.CustomerID)
	if !ok {
		return reject(MsgInvalidCustomerID)
	}
	customer, err := s.customers.GetByID(dbc, customerID)
	if err != nil {
		return fail("load customer", err)
	}
	if customer == nil {
		return reject(MsgInvalidCustomerID)
	}

	requested := make([]string, 0, len(in.ProductIDs))
	for _, raw := range in.ProductIDs {
		if v := trim(raw); v != "" {
			requested = append(requested, v)
		}
	}
	if len(requested) == 0 {
		return reject(MsgNoProducts)
	}

	// Unparseable ids can never exist, so they are reported as given.
	ids := make([]uuid.UUID, 0, len(requested))
	rawByID := make(map[uuid.UUID]string, len(requested))
	missing := map[string]struct{}{}
	for _, raw := range requested {
		id, ok := parseID(raw)
		if !ok {
			missing[raw] = struct{}{}
			continue
		}
		if _, seen := rawByID[id]; seen {
			continue
		}
		rawByID[id] = raw
		ids = append(ids, id)
	}

	products, err := s.products.GetByIDs(dbc, ids)
	if err != nil {
		return fail("load products", err)
	}
	found := make(map[uuid.UUID]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing[rawByID[id]] = struct{}{}
		}
	}
	if len(missing) > 0 {
		list := make([]string, 0, len(missing))
		for raw := range missing {
			list = append(list, raw)
		}
		sort.Strings(list)
		return reject(fmt.Sprintf("Invalid product ID(s): %s", strings.Join(list, ", ")))
	}

	orderDate := s.now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	total := decimal.Zero
	items := make([]types.Product, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		items = append(items, *p)
	}
	if err := validation.TotalInRange(total); err != nil {
		return reject(validation.Message(err))
	}

	order := &types.Order{
		CustomerID:  customer.ID,
		Products:    items,
		TotalAmount: total,
		OrderDate:   orderDate.UTC(),
	}
	err = s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		return s.orders.Create(dbc, order)
	})
	if err != nil {
		return fail("create order", err)
	}
	order.Customer = customer

	s.observer.MutationFinished("create_order", OutcomeCreated)
	return &CreateOrderResult{Order: order, Errors: []string{}}, nil
}
