package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tunderatti-ops/FarmDirect/internal/gateway"
	retrierconfig "github.com/tunderatti-ops/FarmDirect/pkg/retrier"
	"github.com/tunderatti-ops/FarmDirect/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "chain-node"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// coreInfoResponse - ответ /v2/info ноды, берем только высоту.
type coreInfoResponse struct {
	StacksTipHeight int64 `json:"stacks_tip_height"`
}

// ChainGateway читает текущую высоту блока с ноды, высота пишется
// в заказы как момент событий жизненного цикла.
type ChainGateway struct {
	client  httpDoer
	host    string
	retrier retrier
}

func New(client httpDoer, host string) *ChainGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     gateway.IsRetryable,
	}

	return &ChainGateway{
		client:  client,
		host:    host,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *ChainGateway) CurrentHeight(ctx context.Context) (int64, error) {
	url := g.host + "/v2/info"

	var info coreInfoResponse

	err := g.executeWithMetrics(ctx, "CurrentHeight", func(ctx context.Context) error {
		return g.getInfo(ctx, url, &info)
	})
	if err != nil {
		return 0, fmt.Errorf("gateway chain, current height: %w", err)
	}

	return info.StacksTipHeight, nil
}

func (g *ChainGateway) getInfo(ctx context.Context, url string, info *coreInfoResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return gateway.NewStatusError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return fmt.Errorf("decode node info: %w", err)
	}

	return nil
}

func (g *ChainGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
