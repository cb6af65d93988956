package settlement_sweep

import (
	"context"
	"time"
)

const batchLimit = 100

type Service interface {
	ReconcileUnsettled(ctx context.Context, limit int64) error
}

// SettlementSweep периодически добирает расчеты по заказам, события которых
// не дошли до консьюмера. Страховка поверх fire-and-forget публикации.
type SettlementSweep struct {
	service  Service
	interval time.Duration
}

func NewSettlementSweep(service Service, interval time.Duration) *SettlementSweep {
	return &SettlementSweep{
		service:  service,
		interval: interval,
	}
}

func (s *SettlementSweep) TTL() time.Duration {
	return s.interval
}

func (s *SettlementSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	return s.service.ReconcileUnsettled(ctxWithTimeout, batchLimit)
}

func (s *SettlementSweep) Info() string {
	return "settlement sweep"
}
