package database

import (
	"time"

	"github.com/scamtrace/scamtrace/internal/database/service"
	"github.com/scamtrace/scamtrace/internal/setup/config"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	scammer *service.ScammerService
	bounty  *service.BountyService
	comment *service.CommentService
}

// NewService creates a new service instance with all services.
func NewService(repo *Repository, cfg *config.Bounty, logger *zap.Logger) *Service {
	return &Service{
		scammer: service.NewScammer(repo.Scammer(), logger),
		bounty: service.NewBounty(
			repo.Scammer(),
			repo.Bounty(),
			time.Duration(cfg.CacheTTLMinutes)*time.Minute,
			cfg.PageSize,
			logger,
		),
		comment: service.NewComment(repo.Comment(), logger),
	}
}

// Scammer returns the scam report service.
func (s *Service) Scammer() *service.ScammerService {
	return s.scammer
}

// Bounty returns the bounty ledger service.
func (s *Service) Bounty() *service.BountyService {
	return s.bounty
}

// Comment returns the comment service.
func (s *Service) Comment() *service.CommentService {
	return s.comment
}
