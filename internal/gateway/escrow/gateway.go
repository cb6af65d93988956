package escrow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/internal/gateway"
	orderservice "github.com/tunderatti-ops/FarmDirect/internal/service/order"
	"github.com/tunderatti-ops/FarmDirect/pkg/idempotency"
	retrierconfig "github.com/tunderatti-ops/FarmDirect/pkg/retrier"
	"github.com/tunderatti-ops/FarmDirect/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "escrow-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type transferRequest struct {
	Amount int64  `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// EscrowGateway - HTTP-клиент сервиса удержания средств. Transfer двигает
// комиссию при размещении заказа, Release и Refund закрывают эскроу после
// доставки или отмены.
type EscrowGateway struct {
	client  httpDoer
	host    string
	retrier retrier
}

func New(client httpDoer, host string) *EscrowGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     gateway.IsRetryable,
	}

	return &EscrowGateway{
		client:  client,
		host:    host,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *EscrowGateway) Transfer(ctx context.Context, amount int64, from, to entities.Principal) error {
	body, err := json.Marshal(transferRequest{
		Amount: amount,
		From:   from.String(),
		To:     to.String(),
	})
	if err != nil {
		return fmt.Errorf("gateway escrow, marshal transfer: %w", err)
	}

	// POST /transfers не идемпотентен сам по себе: ключ генерируется один раз
	// на перевод, retry после потерянного ответа не спишет комиссию повторно.
	idemKey, err := idempotency.NewKey()
	if err != nil {
		return fmt.Errorf("gateway escrow, transfer: %w", err)
	}

	url := g.host + "/transfers"

	err = g.executeWithMetrics(ctx, "Transfer", func(ctx context.Context) error {
		return g.post(ctx, url, body, idemKey)
	})
	if err != nil {
		if gateway.IsStatus(err, http.StatusPaymentRequired) {
			return orderservice.ErrInvalidPaymentAmount
		}
		return fmt.Errorf("gateway escrow, transfer: %w", err)
	}

	return nil
}

func (g *EscrowGateway) Release(ctx context.Context, orderID int64) error {
	url := fmt.Sprintf("%s/escrows/%d/release", g.host, orderID)

	// по заказу возможна ровно одна выплата, ключ детерминированный
	idemKey := fmt.Sprintf("release-%d", orderID)

	err := g.executeWithMetrics(ctx, "Release", func(ctx context.Context) error {
		return g.post(ctx, url, nil, idemKey)
	})
	if err != nil {
		if gateway.IsStatus(err, http.StatusNotFound) {
			return orderservice.ErrOrderNotFound
		}
		return fmt.Errorf("gateway escrow, release order %d: %w", orderID, err)
	}

	return nil
}

func (g *EscrowGateway) Refund(ctx context.Context, orderID int64) error {
	url := fmt.Sprintf("%s/escrows/%d/refund", g.host, orderID)

	idemKey := fmt.Sprintf("refund-%d", orderID)

	err := g.executeWithMetrics(ctx, "Refund", func(ctx context.Context) error {
		return g.post(ctx, url, nil, idemKey)
	})
	if err != nil {
		if gateway.IsStatus(err, http.StatusNotFound) {
			return orderservice.ErrOrderNotFound
		}
		return fmt.Errorf("gateway escrow, refund order %d: %w", orderID, err)
	}

	return nil
}

func (g *EscrowGateway) post(ctx context.Context, url string, body []byte, idemKey string) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(idempotency.Header, idemKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// тело не нужно, но дочитываем для реюза коннекта
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return gateway.NewStatusError(resp.StatusCode)
	}

	return nil
}

func (g *EscrowGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := gateway.HTTPCode(err)
	gateway.RequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}
