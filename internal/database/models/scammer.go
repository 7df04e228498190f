package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/scamtrace/scamtrace/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ScammerModel handles database operations for scam reports.
type ScammerModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewScammer creates a new scammer model.
func NewScammer(db *bun.DB, logger *zap.Logger) *ScammerModel {
	return &ScammerModel{
		db:     db,
		logger: logger.Named("db_scammer"),
	}
}

// Create inserts a new scam report in pending state.
func (r *ScammerModel) Create(ctx context.Context, scammer *types.Scammer) error {
	if scammer.ID == "" {
		scammer.ID = uuid.New().String()
	}

	now := time.Now()
	scammer.Status = enum.ScammerStatusPending
	scammer.CreatedAt = now
	scammer.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(scammer).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create scammer record: %w", err)
	}

	return nil
}

// GetByID retrieves a scam report by its ID.
func (r *ScammerModel) GetByID(ctx context.Context, id string) (*types.Scammer, error) {
	scammer := new(types.Scammer)

	err := r.db.NewSelect().
		Model(scammer).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrScammerNotFound
		}

		return nil, fmt.Errorf("failed to get scammer record: %w", err)
	}

	return scammer, nil
}

// Exists reports whether a scam report with the given ID is present.
func (r *ScammerModel) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*types.Scammer)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check scammer existence: %w", err)
	}

	return exists, nil
}

// List retrieves scam reports newest-first, optionally filtered by status.
func (r *ScammerModel) List(
	ctx context.Context, status *enum.ScammerStatus, offset, limit int,
) ([]*types.Scammer, int, error) {
	query := r.db.NewSelect().
		Model((*types.Scammer)(nil))
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count scammer records: %w", err)
	}

	var scammers []*types.Scammer

	query = r.db.NewSelect().
		Model(&scammers).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to list scammer records: %w", err)
	}

	return scammers, total, nil
}

// UpdateStatus sets the moderation status of a scam report.
func (r *ScammerModel) UpdateStatus(ctx context.Context, id string, status enum.ScammerStatus) error {
	res, err := r.db.NewUpdate().
		Model((*types.Scammer)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update scammer status: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return types.ErrScammerNotFound
	}

	return nil
}

// IncrementBounty atomically adds amount to a report's bounty total. The
// single-statement increment avoids the lost update a read-modify-write
// sequence would allow under concurrent contributors.
func (r *ScammerModel) IncrementBounty(ctx context.Context, id string, amount float64) error {
	res, err := r.db.NewUpdate().
		Model((*types.Scammer)(nil)).
		Set("bounty_amount = bounty_amount + ?", amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment bounty total: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return types.ErrScammerNotFound
	}

	return nil
}

// TotalBountyByReporter sums the bounty totals across all reports filed by
// a reporter, used to grant badge credit for successful reports.
func (r *ScammerModel) TotalBountyByReporter(ctx context.Context, reporterID string) (float64, error) {
	var total float64

	err := r.db.NewSelect().
		Model((*types.Scammer)(nil)).
		ColumnExpr("COALESCE(SUM(bounty_amount), 0)").
		Where("reporter_id = ?", reporterID).
		Scan(ctx, &total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum reporter bounties: %w", err)
	}

	return total, nil
}

// ListVerifiedAddresses returns the wallet addresses of all verified
// reports, used by the blocklist exporter.
func (r *ScammerModel) ListVerifiedAddresses(ctx context.Context) ([]*types.Scammer, error) {
	var scammers []*types.Scammer

	err := r.db.NewSelect().
		Model(&scammers).
		Column("id", "name", "wallet_address", "bounty_amount").
		Where("status = ?", enum.ScammerStatusVerified).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list verified addresses: %w", err)
	}

	return scammers, nil
}
