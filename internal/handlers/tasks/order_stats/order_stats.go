package order_stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

var ordersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_status",
		Help: "Current number of orders per lifecycle status",
	},
	[]string{"status"},
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

// OrderStats периодически выгружает распределение заказов по статусам
// в метрики, статусы без заказов обнуляются явно.
type OrderStats struct {
	service  Service
	interval time.Duration
}

func NewOrderStats(service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	statuses := []entities.OrderStatusType{
		entities.OrderPending,
		entities.OrderShipped,
		entities.OrderDelivered,
		entities.OrderCancelled,
	}
	for _, status := range statuses {
		ordersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
