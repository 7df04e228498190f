package models

import (
	"context"
	"fmt"
	"time"

	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommentModel handles database operations for comments.
type CommentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewComment creates a new comment model.
func NewComment(db *bun.DB, logger *zap.Logger) *CommentModel {
	return &CommentModel{
		db:     db,
		logger: logger.Named("db_comment"),
	}
}

// GetComments retrieves comments for a scam report, newest-first.
func (r *CommentModel) GetComments(ctx context.Context, scammerID string) ([]*types.ScammerComment, error) {
	var comments []*types.ScammerComment

	err := r.db.NewSelect().
		Model(&comments).
		Where("scammer_id = ?", scammerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// UpsertComment inserts or updates a commenter's note on a scam report.
func (r *CommentModel) UpsertComment(ctx context.Context, comment *types.ScammerComment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(comment).
		On("CONFLICT (scammer_id, commenter_id) DO UPDATE").
		Set("message = EXCLUDED.message").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add/update comment: %w", err)
	}

	return nil
}

// DeleteComment deletes a comment by the commenter.
func (r *CommentModel) DeleteComment(ctx context.Context, scammerID, commenterID string) error {
	res, err := r.db.NewDelete().
		Model((*types.ScammerComment)(nil)).
		Where("scammer_id = ?", scammerID).
		Where("commenter_id = ?", commenterID). // Only allow deleting own comments
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return types.ErrCommentNotFound
	}

	return nil
}
