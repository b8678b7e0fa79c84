package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/crm-backend/internal/crm/filter"
	types "github.com/yungbote/crm-backend/internal/domain/crm"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type OrderLister interface {
	AllOrders(ctx context.Context, f *filter.OrderFilter, orderBy string) ([]*types.Order, error)
}

// OrderReminders logs "Reminder: Order <id> for <email>" for every order
// placed within the trailing window.
type OrderReminders struct {
	out    *logger.Logger
	log    *logger.Logger
	orders OrderLister
	window time.Duration
	now    func() time.Time
}

type OrderRemindersDeps struct {
	Out    *logger.Logger
	Log    *logger.Logger
	Orders OrderLister
	Window time.Duration
	Now    func() time.Time
}

func NewOrderReminders(deps OrderRemindersDeps) *OrderReminders {
	window := deps.Window
	if window <= 0 {
		window = 7 * 24 * time.Hour
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &OrderReminders{
		out:    deps.Out,
		log:    deps.Log.With("job", "order_reminders"),
		orders: deps.Orders,
		window: window,
		now:    now,
	}
}

func (r *OrderReminders) Name() string { return "order_reminders" }

func (r *OrderReminders) Run(ctx context.Context) error {
	to := r.now().UTC()
	from := to.Add(-r.window)

	orders, err := r.orders.AllOrders(ctx, &filter.OrderFilter{
		OrderDateGte: &from,
		OrderDateLte: &to,
	}, "order_date")
	if err != nil {
		r.out.Error(fmt.Sprintf("Error while fetching orders: %v", err))
		r.out.Sync()
		return fmt.Errorf("fetch recent orders: %w", err)
	}

	for _, o := range orders {
		email := ""
		if o.Customer != nil {
			email = o.Customer.Email
		}
		r.out.Info(fmt.Sprintf("Reminder: Order %s for %s", o.ID, email))
	}
	r.out.Sync()
	r.log.Info("Order reminders logged", "count", len(orders))
	return nil
}
