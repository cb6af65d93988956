package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/service/platform"
)

const configColumns = `next_order_id, max_orders, platform_fee_bps,
		escrow_principal, supply_chain_principal, product_catalog_principal`

// Repository работает с единственной строкой platform_config,
// строка сидируется миграцией.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context) (*entities.PlatformConfig, error) {
	query := `SELECT ` + configColumns + `
		FROM platform_config`

	return r.getOne(ctx, query)
}

// GetForUpdate блокирует строку конфигурации, сериализуя размещение заказов
// между собой и со сменой комиссии.
func (r *Repository) GetForUpdate(ctx context.Context) (*entities.PlatformConfig, error) {
	query := `SELECT ` + configColumns + `
		FROM platform_config
		FOR UPDATE`

	return r.getOne(ctx, query)
}

func (r *Repository) getOne(ctx context.Context, query string) (*entities.PlatformConfig, error) {
	var configModel PlatformConfigDB
	err := r.querier.QueryRow(ctx, query).
		Scan(
			&configModel.NextOrderID,
			&configModel.MaxOrders,
			&configModel.PlatformFeeBps,
			&configModel.EscrowPrincipal,
			&configModel.SupplyChainPrincipal,
			&configModel.ProductCatalogPrincipal,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, platform.ErrConfigNotFound
		}

		return nil, fmt.Errorf("unexpected platform repository get error: %w", err)
	}

	return ToDomain(&configModel), nil
}

// AllocateOrderID выдает следующий последовательный id заказа, начиная с нуля.
func (r *Repository) AllocateOrderID(ctx context.Context) (int64, error) {
	query := `
		UPDATE platform_config
		SET next_order_id = next_order_id + 1
		RETURNING next_order_id - 1
	`

	var orderID int64
	err := r.querier.QueryRow(ctx, query).Scan(&orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, platform.ErrConfigNotFound
		}

		return 0, fmt.Errorf("unexpected platform repository allocate id error: %w", err)
	}

	return orderID, nil
}

func (r *Repository) SetFeeRate(ctx context.Context, feeRateBps int64) error {
	query := `
		UPDATE platform_config
		SET platform_fee_bps = $1
	`

	result, err := r.querier.Exec(ctx, query, feeRateBps)
	if err != nil {
		return fmt.Errorf("unexpected platform repository set fee error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return platform.ErrConfigNotFound
	}

	return nil
}
