package app

import (
	apphttp "github.com/yungbote/crm-backend/internal/http"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlerset Handlers, metrics *observability.Metrics, serviceName string) *apphttp.Server {
	log.Info("Wiring router...")
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:             log,
		ServiceName:     serviceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		Metrics:         metrics,
		HealthHandler:   handlerset.Health,
		CustomerHandler: handlerset.Customer,
		ProductHandler:  handlerset.Product,
		OrderHandler:    handlerset.Order,
	})
}
