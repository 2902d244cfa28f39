package services

import (
	"context"

	"github.com/propwise/manager-api/internal/repositories"
	"github.com/propwise/manager-api/internal/utils"
)

// RateLimitCleanupService purges lapsed rate-limit counters; main schedules
// it daily via cron.
type RateLimitCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type rateLimitCleanupService struct {
	repo repositories.RateLimitRepository
}

func NewRateLimitCleanupService(repo repositories.RateLimitRepository) RateLimitCleanupService {
	return &rateLimitCleanupService{repo: repo}
}

func (s *rateLimitCleanupService) CleanupDaily(ctx context.Context) error {
	if err := s.repo.CleanupExpired(ctx); err != nil {
		return err
	}
	utils.Logger.Info("Expired rate limit counters cleaned up")
	return nil
}
