package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/repository"
	"github.com/tunderatti-ops/FarmDirect/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, product_id, quantity, price_per_unit, total_amount,
		buyer, seller, status, order_height, ship_height, delivery_height,
		delivery_location, currency`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderModel := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, product_id, quantity, price_per_unit, total_amount,
			buyer, seller, status, order_height, ship_height, delivery_height,
			delivery_location, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderModel.ID,
		orderModel.ProductID,
		orderModel.Quantity,
		orderModel.PricePerUnit,
		orderModel.TotalAmount,
		orderModel.Buyer,
		orderModel.Seller,
		orderModel.Status,
		orderModel.OrderHeight,
		orderModel.ShipHeight,
		orderModel.DeliveryHeight,
		orderModel.DeliveryLocation,
		orderModel.Currency,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrOrderAlreadyExists
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	return r.getOne(ctx, query, orderID)
}

// GetByIDForUpdate блокирует строку заказа до конца транзакции, переходы
// статуса делаются только через нее.
func (r *Repository) GetByIDForUpdate(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, orderID)
}

func (r *Repository) getOne(ctx context.Context, query string, orderID int64) (*entities.Order, error) {
	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.PricePerUnit,
			&orderModel.TotalAmount,
			&orderModel.Buyer,
			&orderModel.Seller,
			&orderModel.Status,
			&orderModel.OrderHeight,
			&orderModel.ShipHeight,
			&orderModel.DeliveryHeight,
			&orderModel.DeliveryLocation,
			&orderModel.Currency,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) UpdateStatus(ctx context.Context, statusModify entities.OrderStatusModify) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", statusModify.Status.String())

	// опциональные высоты, пишутся только на своем переходе
	if statusModify.ShipHeight != nil {
		builder = builder.Set("ship_height", statusModify.ShipHeight)
	}
	if statusModify.DeliveryHeight != nil {
		builder = builder.Set("delivery_height", statusModify.DeliveryHeight)
	}

	builder = builder.
		Where(sq.Eq{"id": statusModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.PricePerUnit,
			&orderModel.TotalAmount,
			&orderModel.Buyer,
			&orderModel.Seller,
			&orderModel.Status,
			&orderModel.OrderHeight,
			&orderModel.ShipHeight,
			&orderModel.DeliveryHeight,
			&orderModel.DeliveryLocation,
			&orderModel.Currency,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel)
}

// UpsertLatestUpdate хранит ровно одну запись аудита на заказ,
// каждый переход перезаписывает предыдущий.
func (r *Repository) UpsertLatestUpdate(ctx context.Context, update entities.OrderUpdate) error {
	query := `
		INSERT INTO order_updates (order_id, update_status, update_height, updater)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id) DO UPDATE
		SET update_status = EXCLUDED.update_status,
			update_height = EXCLUDED.update_height,
			updater = EXCLUDED.updater
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		update.OrderID,
		update.UpdateStatus.String(),
		update.UpdateHeight,
		update.Updater.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository upsert update error: %w", err)
	}

	return nil
}

func (r *Repository) GetLatestUpdate(ctx context.Context, orderID int64) (*entities.OrderUpdate, error) {
	query := `
		SELECT order_id, update_status, update_height, updater
		FROM order_updates
		WHERE order_id = $1
	`

	var updateModel OrderUpdateDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&updateModel.OrderID,
			&updateModel.UpdateStatus,
			&updateModel.UpdateHeight,
			&updateModel.Updater,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository get update error: %w", err)
	}

	return ToUpdateDomain(&updateModel), nil
}

// MarkSettled фиксирует, что расчеты по эскроу заказа завершены и повторно
// его обрабатывать не нужно.
func (r *Repository) MarkSettled(ctx context.Context, orderID int64) error {
	query := `UPDATE orders SET settled = TRUE WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark settled error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// ListUnsettled возвращает завершенные заказы, расчеты по которым еще не
// прошли, батчами по возрастанию id.
func (r *Repository) ListUnsettled(ctx context.Context, limit int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE NOT settled AND status IN ('delivered', 'cancelled')
		ORDER BY id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list unsettled error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(
			&orderModel.ID,
			&orderModel.ProductID,
			&orderModel.Quantity,
			&orderModel.PricePerUnit,
			&orderModel.TotalAmount,
			&orderModel.Buyer,
			&orderModel.Seller,
			&orderModel.Status,
			&orderModel.OrderHeight,
			&orderModel.ShipHeight,
			&orderModel.DeliveryHeight,
			&orderModel.DeliveryLocation,
			&orderModel.Currency,
		); err != nil {
			return nil, fmt.Errorf("unexpected order repository list unsettled error: %w", err)
		}

		orderEntity, err := ToDomain(&orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list unsettled error: %w", err)
		}
		orders = append(orders, *orderEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list unsettled error: %w", err)
	}

	return orders, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, 4)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return counts, nil
}
