package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

type ProductHandler struct {
	log      *logger.Logger
	mutation services.MutationService
	query    services.QueryService
}

func NewProductHandler(log *logger.Logger, mutation services.MutationService, query services.QueryService) *ProductHandler {
	return &ProductHandler{
		log:      log.With("handler", "ProductHandler"),
		mutation: mutation,
		query:    query,
	}
}

type createProductRequest struct {
	Name  string      `json:"name"`
	Price decimalText `json:"price"`
	Stock *int        `json:"stock"`
}

type productSearchRequest struct {
	Filters *filter.ProductFilter `json:"filters"`
	OrderBy string                `json:"order_by"`
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if !bindJSON(c, &req, false) {
		return
	}
	res, err := h.mutation.CreateProduct(c.Request.Context(), services.ProductInput{
		Name:  req.Name,
		Price: string(req.Price),
		Stock: req.Stock,
	})
	if err != nil {
		h.fail(c, "create_product_failed", err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	rows, err := h.query.Products(c.Request.Context())
	if err != nil {
		h.fail(c, "list_products_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"products": rows})
}

// POST /api/products/search
func (h *ProductHandler) Search(c *gin.Context) {
	var req productSearchRequest
	if !bindJSON(c, &req, true) {
		return
	}
	rows, err := h.query.AllProducts(c.Request.Context(), req.Filters, req.OrderBy)
	if err != nil {
		h.fail(c, "search_products_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"products": rows})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	row, err := h.query.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_product_failed", err)
		return
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("product_not_found", nil))
		return
	}
	response.RespondOK(c, gin.H{"product": row})
}

func (h *ProductHandler) fail(c *gin.Context, code string, err error) {
	respondInternal(c, h.log, "Product request failed", code, err)
}
