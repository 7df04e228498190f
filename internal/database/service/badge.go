package service

import (
	"context"

	"github.com/scamtrace/scamtrace/internal/badge"
	"github.com/scamtrace/scamtrace/internal/setup/config"
	"go.uber.org/zap"
)

// BalanceProvider supplies a wallet's current token holding.
type BalanceProvider interface {
	GetBalance(ctx context.Context, wallet string) (float64, error)
}

// ReporterBountyStore sums the bounty raised across a reporter's reports.
type ReporterBountyStore interface {
	TotalBountyByReporter(ctx context.Context, reporterID string) (float64, error)
}

// BadgeService resolves a wallet's reputation badge from its token holding
// and the bounties raised on its reports, whichever earns the higher tier.
type BadgeService struct {
	balances BalanceProvider
	scammers ReporterBountyStore
	cfg      *config.Badge
	logger   *zap.Logger
}

// NewBadge creates a new badge service.
func NewBadge(
	balances BalanceProvider,
	scammers ReporterBountyStore,
	cfg *config.Badge,
	logger *zap.Logger,
) *BadgeService {
	return &BadgeService{
		balances: balances,
		scammers: scammers,
		cfg:      cfg,
		logger:   logger.Named("badge_service"),
	}
}

// GetBadge evaluates the badge for a wallet. A failed bounty lookup degrades
// to holding-only evaluation: reporters should never lose their
// holding-based tier because one input was unavailable.
func (s *BadgeService) GetBadge(ctx context.Context, wallet string) (*badge.Info, error) {
	holding, err := s.balances.GetBalance(ctx, wallet)
	if err != nil {
		return nil, err
	}

	bountyRaised, err := s.scammers.TotalBountyByReporter(ctx, wallet)
	if err != nil {
		s.logger.Warn("Failed to sum reporter bounties, evaluating holding only",
			zap.String("wallet", wallet),
			zap.Error(err))

		bountyRaised = 0
	}

	return badge.CalculateWithCredit(
		holding, bountyRaised, s.cfg.ConversionRate, s.cfg.TotalSupply, s.cfg.Tiers,
	)
}
