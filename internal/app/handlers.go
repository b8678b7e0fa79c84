package app

import (
	redisclient "github.com/yungbote/crm-backend/internal/clients/redis"
	httpH "github.com/yungbote/crm-backend/internal/http/handlers"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Customer *httpH.CustomerHandler
	Product  *httpH.ProductHandler
	Order    *httpH.OrderHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, liveness redisclient.Liveness) Handlers {
	log.Info("Wiring handlers...")

	var reader httpH.LivenessReader
	if liveness != nil {
		reader = liveness
	}

	return Handlers{
		Health:   httpH.NewHealthHandler(log, serviceset.Query, reader),
		Customer: httpH.NewCustomerHandler(log, serviceset.Mutation, serviceset.Query),
		Product:  httpH.NewProductHandler(log, serviceset.Mutation, serviceset.Query),
		Order:    httpH.NewOrderHandler(log, serviceset.Mutation, serviceset.Query),
	}
}
