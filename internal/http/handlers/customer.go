package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

type CustomerHandler struct {
	log      *logger.Logger
	mutation services.MutationService
	query    services.QueryService
}

func NewCustomerHandler(log *logger.Logger, mutation services.MutationService, query services.QueryService) *CustomerHandler {
	return &CustomerHandler{
		log:      log.With("handler", "CustomerHandler"),
		mutation: mutation,
		query:    query,
	}
}

type bulkCustomersRequest struct {
	Customers []services.CustomerInput `json:"customers"`
}

type customerSearchRequest struct {
	Filters *filter.CustomerFilter `json:"filters"`
	OrderBy string                 `json:"order_by"`
}

// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req services.CustomerInput
	if !bindJSON(c, &req, false) {
		return
	}
	res, err := h.mutation.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "create_customer_failed", err)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/customers/bulk
func (h *CustomerHandler) BulkCreate(c *gin.Context) {
	var req bulkCustomersRequest
	if !bindJSON(c, &req, false) {
		return
	}
	res, err := h.mutation.BulkCreateCustomers(c.Request.Context(), req.Customers)
	if err != nil {
		h.fail(c, "bulk_create_customers_failed", err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	rows, err := h.query.Customers(c.Request.Context())
	if err != nil {
		h.fail(c, "list_customers_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customers": rows})
}

// POST /api/customers/search
func (h *CustomerHandler) Search(c *gin.Context) {
	var req customerSearchRequest
	if !bindJSON(c, &req, true) {
		return
	}
	rows, err := h.query.AllCustomers(c.Request.Context(), req.Filters, req.OrderBy)
	if err != nil {
		h.fail(c, "search_customers_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customers": rows})
}

// GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	row, err := h.query.Customer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_customer_failed", err)
		return
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("customer_not_found", nil))
		return
	}
	response.RespondOK(c, gin.H{"customer": row})
}

// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	ok, err := h.mutation.DeleteCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "delete_customer_failed", err)
		return
	}
	if !ok {
		response.RespondAPIError(c, apierr.NotFound("customer_not_found", nil))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) fail(c *gin.Context, code string, err error) {
	respondInternal(c, h.log, "Customer request failed", code, err)
}
