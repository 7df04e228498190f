package database

import (
	"github.com/scamtrace/scamtrace/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	scammer *models.ScammerModel
	bounty  *models.BountyModel
	comment *models.CommentModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		scammer: models.NewScammer(db, logger),
		bounty:  models.NewBounty(db, logger),
		comment: models.NewComment(db, logger),
	}
}

// Scammer returns the scam report model repository.
func (r *Repository) Scammer() *models.ScammerModel {
	return r.scammer
}

// Bounty returns the contribution ledger model repository.
func (r *Repository) Bounty() *models.BountyModel {
	return r.bounty
}

// Comment returns the comment model repository.
func (r *Repository) Comment() *models.CommentModel {
	return r.comment
}
