package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// BountyModel handles database operations for the contribution ledger.
type BountyModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewBounty creates a new bounty model.
func NewBounty(db *bun.DB, logger *zap.Logger) *BountyModel {
	return &BountyModel{
		db:     db,
		logger: logger.Named("db_bounty"),
	}
}

// InsertContribution appends a new row to the contribution ledger.
func (r *BountyModel) InsertContribution(ctx context.Context, contribution *types.BountyContribution) error {
	if contribution.ID == "" {
		contribution.ID = uuid.New().String()
	}

	contribution.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(contribution).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}

	return nil
}

// CountContributions returns the number of ledger rows for a scammer.
func (r *BountyModel) CountContributions(ctx context.Context, scammerID string) (int, error) {
	count, err := r.db.NewSelect().
		Model((*types.BountyContribution)(nil)).
		Where("scammer_id = ?", scammerID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count contributions: %w", err)
	}

	return count, nil
}

// ListContributions retrieves a page of contributions for a scammer,
// newest-first. Descending creation order is part of the contract.
func (r *BountyModel) ListContributions(
	ctx context.Context, scammerID string, offset, limit int,
) ([]*types.BountyContribution, error) {
	var contributions []*types.BountyContribution

	err := r.db.NewSelect().
		Model(&contributions).
		Where("scammer_id = ?", scammerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	return contributions, nil
}
