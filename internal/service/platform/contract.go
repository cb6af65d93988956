//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=platform_test
package platform

import (
	"context"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

type Repository interface {
	Get(ctx context.Context) (*entities.PlatformConfig, error)
	SetFeeRate(ctx context.Context, feeRateBps int64) error
}
