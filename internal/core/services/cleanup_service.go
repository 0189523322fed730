package services

import (
	"context"

	"evote-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CleanupService purges expired refresh tokens on a schedule
type CleanupService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(refreshTokenRepo repositories.RefreshTokenRepository) *CleanupService {
	return &CleanupService{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start schedules the daily purge
func (s *CleanupService) Start() {
	if _, err := s.cron.AddFunc("@daily", s.purgeExpiredTokens); err != nil {
		logrus.Errorf("failed to schedule token cleanup: %v", err)
		return
	}
	s.cron.Start()
	logrus.Info("🚀 CleanupService started (expired refresh tokens purged daily)")
}

// Stop stops the scheduler
func (s *CleanupService) Stop() {
	s.cron.Stop()
	logrus.Info("🛑 CleanupService stopped")
}

func (s *CleanupService) purgeExpiredTokens() {
	n, err := s.refreshTokenRepo.DeleteExpired(context.Background())
	if err != nil {
		logrus.Errorf("expired token purge failed: %v", err)
		return
	}
	if n > 0 {
		logrus.Infof("🗑️ Purged %d expired refresh tokens", n)
	}
}
