package platform

import (
	"context"
	"fmt"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

// Service - административные операции над конфигурацией платформы.
// Администратор - принципал, задеплоивший контракт, задается при старте.
type Service struct {
	repository Repository
	admin      entities.Principal
}

func New(repository Repository, admin entities.Principal) *Service {
	return &Service{
		repository: repository,
		admin:      admin,
	}
}

// SetPlatformFee меняет ставку комиссии (в базисных пунктах) без верхней
// границы: контракт принимает любую неотрицательную ставку, новые заказы
// считают комиссию по ней сразу же.
func (s *Service) SetPlatformFee(ctx context.Context, caller entities.Principal, feeRateBps int64) error {
	if caller != s.admin {
		return ErrNotAuthorized
	}
	if feeRateBps < 0 {
		return ErrInvalidFeeRate
	}

	if err := s.repository.SetFeeRate(ctx, feeRateBps); err != nil {
		return fmt.Errorf("set platform fee: %w", err)
	}
	return nil
}

func (s *Service) GetConfig(ctx context.Context) (*entities.PlatformConfig, error) {
	cfg, err := s.repository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get platform config: %w", err)
	}
	return cfg, nil
}
