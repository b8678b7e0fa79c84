package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/aggregates"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

type Services struct {
	Mutation services.MutationService
	Query    services.QueryService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	var observer services.MutationObserver
	if metrics != nil {
		observer = metrics
	}

	return Services{
		Mutation: services.NewMutationService(services.MutationDeps{
			DB:        db,
			Log:       log,
			Runner:    aggregates.NewGormTxRunner(db),
			Customers: reposet.Customer,
			Products:  reposet.Product,
			Orders:    reposet.Order,
			Observer:  observer,
		}),
		Query: services.NewQueryService(db, log, reposet.Customer, reposet.Product, reposet.Order),
	}
}
