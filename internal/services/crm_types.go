package services

import (
	"time"

	types "github.com/yungbote/crm-backend/internal/domain/crm"
)

type CustomerInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

func (in CustomerInput) normalized() CustomerInput {
	out := CustomerInput{
		Name:  trim(in.Name),
		Email: trim(in.Email),
	}
	if in.Phone != nil {
		if p := trim(*in.Phone); p != "" {
			out.Phone = &p
		}
	}
	return out
}

func (in CustomerInput) phone() string {
	if in.Phone == nil {
		return ""
	}
	return *in.Phone
}

type ProductInput struct {
	Name string `json:"name"`
	// Price is decimal text; it is parsed exactly, never through a float.
	Price string `json:"price"`
	Stock *int   `json:"stock,omitempty"`
}

type OrderInput struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

type CreateCustomerResult struct {
	Customer *types.Customer `json:"customer"`
	Message  string          `json:"message"`
	Errors   []string        `json:"errors"`
}

type BulkCreateCustomersResult struct {
	Customers []*types.Customer `json:"customers"`
	Errors    []string          `json:"errors"`
}

type CreateProductResult struct {
	Product *types.Product `json:"product"`
	Errors  []string       `json:"errors"`
}

type CreateOrderResult struct {
	Order  *types.Order `json:"order"`
	Errors []string     `json:"errors"`
}

const (
	MsgCustomerCreated      = "Customer created successfully"
	MsgCustomerCreateFailed = "Failed to create customer"
	MsgCustomerEmailTaken   = "A customer with this email already exists."
	MsgInvalidCustomerID    = "Invalid customer ID."
	MsgNoProducts           = "At least one product must be selected."
	MsgRowSaveFailed        = "Failed to save customer"
)
