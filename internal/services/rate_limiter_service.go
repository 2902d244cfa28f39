package services

import (
	"context"
	"fmt"

	"github.com/propwise/manager-api/internal/config"
	"github.com/propwise/manager-api/internal/repositories"
	"github.com/propwise/manager-api/internal/utils"
)

// RateLimiterService enforces the per-client request budget.
type RateLimiterService interface {
	CheckRequestRateLimit(ctx context.Context, ip string) error
}

type rateLimiterService struct {
	repo repositories.RateLimitRepository
	cfg  *config.Config
}

func NewRateLimiterService(repo repositories.RateLimitRepository, cfg *config.Config) RateLimiterService {
	return &rateLimiterService{repo: repo, cfg: cfg}
}

// CheckRequestRateLimit checks the global budget first, then the per-IP
// budget. Both counters share the same window.
func (s *rateLimiterService) CheckRequestRateLimit(ctx context.Context, ip string) error {
	globalKey := "req:global"
	allowed, err := s.repo.IncrementAndCheck(ctx, globalKey, s.cfg.GlobalRequestLimit, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Global request rate limit exceeded (key: %s)", globalKey)
		return utils.ErrRateLimitExceeded
	}

	ipKey := fmt.Sprintf("req:ip:%s", ip)
	allowed, err = s.repo.IncrementAndCheck(ctx, ipKey, s.cfg.RequestLimitPerIP, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Per-IP request rate limit exceeded (key: %s)", ipKey)
		return utils.ErrRateLimitExceeded
	}

	return nil
}
