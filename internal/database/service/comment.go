package service

import (
	"context"
	"errors"

	"github.com/scamtrace/scamtrace/internal/database/models"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"go.uber.org/zap"
)

var ErrEmptyComment = errors.New("comment message must not be empty")

// CommentService handles comment business logic.
type CommentService struct {
	model  *models.CommentModel
	logger *zap.Logger
}

// NewComment creates a new comment service.
func NewComment(model *models.CommentModel, logger *zap.Logger) *CommentService {
	return &CommentService{
		model:  model,
		logger: logger.Named("comment_service"),
	}
}

// Upsert writes or replaces a commenter's note on a scam report.
func (s *CommentService) Upsert(ctx context.Context, comment *types.ScammerComment) error {
	if comment.ScammerID == "" {
		return types.ErrInvalidScammerID
	}

	if comment.Message == "" {
		return ErrEmptyComment
	}

	return s.model.UpsertComment(ctx, comment)
}

// List retrieves comments for a scam report, newest-first.
func (s *CommentService) List(ctx context.Context, scammerID string) ([]*types.ScammerComment, error) {
	if scammerID == "" {
		return nil, types.ErrInvalidScammerID
	}

	return s.model.GetComments(ctx, scammerID)
}

// Delete removes a commenter's own note from a scam report.
func (s *CommentService) Delete(ctx context.Context, scammerID, commenterID string) error {
	if scammerID == "" {
		return types.ErrInvalidScammerID
	}

	return s.model.DeleteComment(ctx, scammerID, commenterID)
}
