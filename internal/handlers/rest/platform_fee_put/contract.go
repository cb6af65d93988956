//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=platform_fee_put_test
package platform_fee_put

import (
	"context"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetPlatformFee(ctx context.Context, caller entities.Principal, feeRateBps int64) error
}
