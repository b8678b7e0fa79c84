package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

type OrderHandler struct {
	log      *logger.Logger
	mutation services.MutationService
	query    services.QueryService
}

func NewOrderHandler(log *logger.Logger, mutation services.MutationService, query services.QueryService) *OrderHandler {
	return &OrderHandler{
		log:      log.With("handler", "OrderHandler"),
		mutation: mutation,
		query:    query,
	}
}

type orderSearchRequest struct {
	Filters *filter.OrderFilter `json:"filters"`
	OrderBy string              `json:"order_by"`
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req services.OrderInput
	if !bindJSON(c, &req, false) {
		return
	}
	res, err := h.mutation.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "create_order_failed", err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	rows, err := h.query.Orders(c.Request.Context())
	if err != nil {
		h.fail(c, "list_orders_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"orders": rows})
}

// POST /api/orders/search
func (h *OrderHandler) Search(c *gin.Context) {
	var req orderSearchRequest
	if !bindJSON(c, &req, true) {
		return
	}
	rows, err := h.query.AllOrders(c.Request.Context(), req.Filters, req.OrderBy)
	if err != nil {
		h.fail(c, "search_orders_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"orders": rows})
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	row, err := h.query.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_order_failed", err)
		return
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("order_not_found", nil))
		return
	}
	response.RespondOK(c, gin.H{"order": row})
}

func (h *OrderHandler) fail(c *gin.Context, code string, err error) {
	respondInternal(c, h.log, "Order request failed", code, err)
}
