package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/crm-backend/internal/http/handlers"
	httpMW "github.com/yungbote/crm-backend/internal/http/middleware"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	Metrics        *observability.Metrics

	HealthHandler   *httpH.HealthHandler
	CustomerHandler *httpH.CustomerHandler
	ProductHandler  *httpH.ProductHandler
	OrderHandler    *httpH.OrderHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if reg := cfg.Metrics.Registry(); reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/hello", cfg.HealthHandler.Hello)
		}

		// Customers
		if cfg.CustomerHandler != nil {
			api.POST("/customers", cfg.CustomerHandler.Create)
			api.POST("/customers/bulk", cfg.CustomerHandler.BulkCreate)
			api.GET("/customers", cfg.CustomerHandler.List)
			api.POST("/customers/search", cfg.CustomerHandler.Search)
			api.GET("/customers/:id", cfg.CustomerHandler.Get)
			api.DELETE("/customers/:id", cfg.CustomerHandler.Delete)
		}

		// Products
		if cfg.ProductHandler != nil {
			api.POST("/products", cfg.ProductHandler.Create)
			api.GET("/products", cfg.ProductHandler.List)
			api.POST("/products/search", cfg.ProductHandler.Search)
			api.GET("/products/:id", cfg.ProductHandler.Get)
		}

		// Orders
		if cfg.OrderHandler != nil {
			api.POST("/orders", cfg.OrderHandler.Create)
			api.GET("/orders", cfg.OrderHandler.List)
			api.POST("/orders/search", cfg.OrderHandler.Search)
			api.GET("/orders/:id", cfg.OrderHandler.Get)
		}
	}

	return r
}
