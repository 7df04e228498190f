package service

import (
	"context"

	"github.com/scamtrace/scamtrace/internal/database/models"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/scamtrace/scamtrace/internal/database/types/enum"
	"go.uber.org/zap"
)

// ScammerService handles scam report business logic.
type ScammerService struct {
	model  *models.ScammerModel
	logger *zap.Logger
}

// NewScammer creates a new scammer service.
func NewScammer(model *models.ScammerModel, logger *zap.Logger) *ScammerService {
	return &ScammerService{
		model:  model,
		logger: logger.Named("scammer_service"),
	}
}

// Report validates and files a new scam report in pending state.
func (s *ScammerService) Report(ctx context.Context, scammer *types.Scammer) error {
	if err := scammer.Validate(); err != nil {
		return err
	}

	if err := s.model.Create(ctx, scammer); err != nil {
		return err
	}

	s.logger.Info("Filed scam report",
		zap.String("scammerID", scammer.ID),
		zap.String("reporterID", scammer.ReporterID))

	return nil
}

// Get retrieves a scam report by ID.
func (s *ScammerService) Get(ctx context.Context, id string) (*types.Scammer, error) {
	if id == "" {
		return nil, types.ErrInvalidScammerID
	}

	return s.model.GetByID(ctx, id)
}

// List retrieves scam reports newest-first, optionally filtered by status.
func (s *ScammerService) List(
	ctx context.Context, status *enum.ScammerStatus, page, pageSize int,
) ([]*types.Scammer, int, error) {
	if page < 1 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = 10
	}

	return s.model.List(ctx, status, (page-1)*pageSize, pageSize)
}

// SetStatus applies a moderation decision to a report.
func (s *ScammerService) SetStatus(ctx context.Context, id string, status enum.ScammerStatus) error {
	if id == "" {
		return types.ErrInvalidScammerID
	}

	if err := s.model.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("Updated report status",
		zap.String("scammerID", id),
		zap.String("status", status.String()))

	return nil
}
