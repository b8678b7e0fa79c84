package services

import (
	"context"
	"fmt"

	"github.com/yungbote/crm-backend/internal/crm/validation"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func (s *mutationService) CreateProduct(ctx context.Context, in ProductInput) (*CreateProductResult, error) {
	name := trim(in.Name)

	var errs []string
	if err := validation.Required(name, "name", validation.MsgNameRequired); err != nil {
		errs = append(errs, validation.Message(err))
	}
	price, err := validation.ParseDecimal(in.Price, "price")
	if err != nil {
		errs = append(errs, validation.Message(err))
	} else {
		// Stored with two fractional digits; check what will be stored.
		price = price.Round(2)
		if err := validation.PricePositive(price); err != nil {
			errs = append(errs, validation.Message(err))
		} else if err := validation.PriceInRange(price); err != nil {
			errs = append(errs, validation.Message(err))
		}
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if err := validation.StockNonNegative(stock); err != nil {
		errs = append(errs, validation.Message(err))
	}
	if len(errs) > 0 {
		s.observer.MutationFinished("create_product", OutcomeRejected)
		return &CreateProductResult{Errors: errs}, nil
	}

	product := &types.Product{Name: name, Price: price, Stock: stock}
	err = s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		_, err := s.products.Create(dbc, []*types.Product{product})
		return err
	})
	if err != nil {
		s.log.Error("Create product failed", "error", err)
		s.observer.MutationFinished("create_product", OutcomeFailed)
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.observer.MutationFinished("create_product", OutcomeCreated)
	return &CreateProductResult{Product: product, Errors: []string{}}, nil
}
