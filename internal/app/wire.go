//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	chainGateway "github.com/tunderatti-ops/FarmDirect/internal/gateway/chain"
	escrowGateway "github.com/tunderatti-ops/FarmDirect/internal/gateway/escrow"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_cancel_post"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_count_get"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_delivery_post"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_get"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_post"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_ship_post"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_status_get"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/order_update_get"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/rest/platform_fee_put"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/tasks/order_stats"
	"github.com/tunderatti-ops/FarmDirect/internal/handlers/tasks/settlement_sweep"
	"github.com/tunderatti-ops/FarmDirect/internal/pkg/config"
	"github.com/tunderatti-ops/FarmDirect/internal/pkg/factory/settlement_handle"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	orderRepo "github.com/tunderatti-ops/FarmDirect/internal/repository/order"
	platformRepo "github.com/tunderatti-ops/FarmDirect/internal/repository/platform"
	orderService "github.com/tunderatti-ops/FarmDirect/internal/service/order"
	platformService "github.com/tunderatti-ops/FarmDirect/internal/service/platform"
	settlementService "github.com/tunderatti-ops/FarmDirect/internal/service/settlement"

	"github.com/tunderatti-ops/FarmDirect/pkg/background"
	"github.com/tunderatti-ops/FarmDirect/pkg/logger"
	"github.com/tunderatti-ops/FarmDirect/pkg/querier"
	"github.com/tunderatti-ops/FarmDirect/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsInterval time.Duration
	SweepInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServicePlatform   ServicePlatform
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_status_get.Service
	order_count_get.Service
	order_ship_post.Service
	order_delivery_post.Service
	order_cancel_post.Service
	order_update_get.Service
}

type ServicePlatform interface {
	platform_fee_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsInterval,

		provideOrderRepository,
		providePlatformRepository,

		provideEscrowGateway,
		provideChainGateway,

		provideServiceOrder,
		provideServicePlatform,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServicePlatform), new(*platformService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ConfigRepository), new(*platformRepo.Repository)),
		wire.Bind(new(platformService.Repository), new(*platformRepo.Repository)),
		wire.Bind(new(orderService.Escrow), new(*escrowGateway.EscrowGateway)),
		wire.Bind(new(orderService.Chain), new(*chainGateway.ChainGateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_stats.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	SettlementService *settlementService.Service
	BackgroundWorkers *background.Worker
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-settlement)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,

		provideEscrowGateway,
		provideStatusHandlerFactory,
		provideServiceSettlement,

		provideSweepInterval,
		provideSettlementSweepTask,
		provideWorkerTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(settlementService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(settlementService.HandlerFactory), new(*settlement_handle.StatusHandlerFactory)),
		wire.Bind(new(settlement_handle.Escrow), new(*escrowGateway.EscrowGateway)),

		wire.Bind(new(settlement_sweep.Service), new(*settlementService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePlatformRepository(querier *querier.Querier) *platformRepo.Repository {
	return platformRepo.New(querier)
}

func provideEscrowGateway(httpClient *http.Client, cfg *config.Config) *escrowGateway.EscrowGateway {
	return escrowGateway.New(httpClient, cfg.Escrow.HTTPHost)
}

func provideChainGateway(httpClient *http.Client, cfg *config.Config) *chainGateway.ChainGateway {
	return chainGateway.New(httpClient, cfg.Chain.NodeHost)
}

func provideServiceOrder(
	repository orderService.Repository,
	configRepo orderService.ConfigRepository,
	escrow orderService.Escrow,
	chain orderService.Chain,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		repository,
		configRepo,
		escrow,
		chain,
		publisher,
		txManager,
	)
}

func provideServicePlatform(
	repository platformService.Repository,
	cfg *config.Config,
) *platformService.Service {
	return platformService.New(repository, entities.Principal(cfg.Platform.AdminPrincipal))
}

func provideServiceSettlement(
	repository settlementService.OrderRepository,
	statusFactory settlementService.HandlerFactory,
) *settlementService.Service {
	return settlementService.New(repository, statusFactory)
}

func provideStatusHandlerFactory(escrow settlement_handle.Escrow) *settlement_handle.StatusHandlerFactory {
	return settlement_handle.NewStatusHandlerFactory(escrow)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	orderStatsService order_stats.Service,
	interval StatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(orderStatsService, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.SettlementSweepInterval)
}

func provideSettlementSweepTask(
	sweepService settlement_sweep.Service,
	interval SweepInterval,
) *settlement_sweep.SettlementSweep {
	return settlement_sweep.NewSettlementSweep(sweepService, time.Duration(interval))
}

func provideWorkerTaskList(
	settlementSweepTask *settlement_sweep.SettlementSweep,
) []background.Task {
	return []background.Task{
		settlementSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
