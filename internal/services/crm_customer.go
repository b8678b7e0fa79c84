package services

import (
	"context"
	"fmt"

	"github.com/yungbote/crm-backend/internal/crm/validation"
	"github.com/yungbote/crm-backend/internal/data/aggregates"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func (s *mutationService) CreateCustomer(ctx context.Context, in CustomerInput) (*CreateCustomerResult, error) {
	in = in.normalized()
	dbc := dbctx.Context{Ctx: ctx}

	var errs []string
	for _, err := range []error{
		validation.Required(in.Name, "name", validation.MsgNameRequired),
		validation.Required(in.Email, "email", validation.MsgEmailRequired),
		validation.Phone(in.phone()),
	} {
		if err != nil {
			errs = append(errs, validation.Message(err))
		}
	}
	if in.Email != "" {
		err := validation.EnsureUniqueEmail(dbc, s.customers, in.Email)
		switch {
		case validation.IsValidation(err):
			errs = append(errs, validation.Message(err))
		case err != nil:
			s.observer.MutationFinished("create_customer", OutcomeFailed)
			return nil, fmt.Errorf("check customer email: %w", err)
		}
	}
	if len(errs) > 0 {
		s.observer.MutationFinished("create_customer", OutcomeRejected)
		return &CreateCustomerResult{Message: MsgCustomerCreateFailed, Errors: errs}, nil
	}

	customer := &types.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone}
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		_, err := s.customers.Create(dbc, []*types.Customer{customer})
		return err
	})
	if err != nil {
		if aggregates.IsConflict(err) {
			// Lost the race between the uniqueness check and the insert.
			s.observer.MutationFinished("create_customer", OutcomeRejected)
			return &CreateCustomerResult{Message: MsgCustomerCreateFailed, Errors: []string{MsgCustomerEmailTaken}}, nil
		}
		s.log.Error("Create customer failed", "error", err)
		s.observer.MutationFinished("create_customer", OutcomeFailed)
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.observer.MutationFinished("create_customer", OutcomeCreated)
	return &CreateCustomerResult{Customer: customer, Message: MsgCustomerCreated, Errors: []string{}}, nil
}

// BulkCreateCustomers gives every row its own savepoint inside one outer
// transaction. A failing row rolls back alone and is reported as "Row N: ...";
// rows before and after it still commit.
func (s *mutationService) BulkCreateCustomers(ctx context.Context, in []CustomerInput) (*BulkCreateCustomersResult, error) {
	res := &BulkCreateCustomersResult{Customers: []*types.Customer{}, Errors: []string{}}
	if len(in) == 0 {
		return res, nil
	}

	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		res.Customers = res.Customers[:0]
		res.Errors = res.Errors[:0]
		for i, item := range in {
			row := i + 1
			var created *types.Customer
			err := s.runner.InSavepoint(dbc, func(sp dbctx.Context) error {
				c, err := s.createCustomerRow(sp, item.normalized())
				if err != nil {
					return err
				}
				created = c
				return nil
			})
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %s", row, s.rowReason(row, err)))
				continue
			}
			res.Customers = append(res.Customers, created)
		}
		return nil
	})
	if err != nil {
		s.log.Error("Bulk customer create failed", "error", err, "rows", len(in))
		s.observer.MutationFinished("bulk_create_customers", OutcomeFailed)
		return nil, fmt.Errorf("bulk create customers: %w", err)
	}
	for range res.Customers {
		s.observer.BulkRowFinished(OutcomeCreated)
	}
	for range res.Errors {
		s.observer.BulkRowFinished(OutcomeRejected)
	}
	s.observer.MutationFinished("bulk_create_customers", OutcomeCreated)
	return res, nil
}

// createCustomerRow stops at the first rule a bulk row breaks.
func (s *mutationService) createCustomerRow(dbc dbctx.Context, in CustomerInput) (*types.Customer, error) {
	if err := validation.Required(in.Name, "name", validation.MsgNameRequired); err != nil {
		return nil, err
	}
	if err := validation.Required(in.Email, "email", validation.MsgEmailRequired); err != nil {
		return nil, err
	}
	if err := validation.Phone(in.phone()); err != nil {
		return nil, err
	}
	if err := validation.EnsureUniqueEmail(dbc, s.customers, in.Email); err != nil {
		return nil, err
	}
	customer := &types.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if _, err := s.customers.Create(dbc, []*types.Customer{customer}); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *mutationService) rowReason(row int, err error) string {
	if msg := validation.Message(err); msg != "" {
		return msg
	}
	if aggregates.IsConflict(err) {
		return validation.MsgDuplicateEmail
	}
	s.log.Warn("Bulk customer row failed", "row", row, "error", err)
	return MsgRowSaveFailed
}

// DeleteCustomer removes the customer, their orders and those orders'
// product links in one transaction. It reports false for unknown ids.
func (s *mutationService) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	customerID, ok := parseID(id)
	if !ok {
		s.observer.MutationFinished("delete_customer", OutcomeNotFound)
		return false, nil
	}
	var deleted bool
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		var err error
		deleted, err = s.customers.Delete(dbc, customerID)
		return err
	})
	if err != nil {
		s.observer.MutationFinished("delete_customer", OutcomeFailed)
		return false, fmt.Errorf("delete customer: %w", err)
	}
	if !deleted {
		s.observer.MutationFinished("delete_customer", OutcomeNotFound)
		return false, nil
	}
	s.observer.MutationFinished("delete_customer", OutcomeDeleted)
	return true, nil
}
