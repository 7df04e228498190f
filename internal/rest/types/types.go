package types

import (
	"github.com/scamtrace/scamtrace/internal/badge"
	dbTypes "github.com/scamtrace/scamtrace/internal/database/types"
)

// ReportScammerRequest is the payload for filing a new scam report.
type ReportScammerRequest struct {
	Name          string `json:"name"`
	WalletAddress string `json:"walletAddress"`
	Description   string `json:"description"`
	ReporterID    string `json:"reporterId"`
}

// UpdateStatusRequest is the payload for a moderation decision.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListScammersResponse is a page of scam reports.
type ListScammersResponse struct {
	Items []*dbTypes.Scammer `json:"items"`
	Total int                `json:"total"`
}

// AddContributionRequest is the payload for a bounty contribution.
type AddContributionRequest struct {
	ContributorID string  `json:"contributorId"`
	Amount        float64 `json:"amount"`
	Comment       string  `json:"comment,omitempty"`
}

// AddContributionResponse confirms a recorded contribution.
// AggregateStale warns that the displayed bounty total may briefly lag.
type AddContributionResponse struct {
	Contribution   *dbTypes.BountyContribution `json:"contribution"`
	AggregateStale bool                        `json:"aggregateStale,omitempty"`
}

// ListContributionsResponse is a page of a scammer's contributions.
type ListContributionsResponse struct {
	Items []*dbTypes.BountyContribution `json:"items"`
	Total int                           `json:"total"`
}

// UpsertCommentRequest is the payload for writing a comment.
type UpsertCommentRequest struct {
	CommenterID string `json:"commenterId"`
	Message     string `json:"message"`
}

// DeleteCommentRequest identifies the commenter removing their own comment.
type DeleteCommentRequest struct {
	CommenterID string `json:"commenterId"`
}

// GetBadgeResponse reports a wallet's badge with display metadata and the
// formatted holding thresholds.
type GetBadgeResponse struct {
	Info             *badge.Info `json:"info"`
	Icon             string      `json:"icon,omitempty"`
	Color            string      `json:"color,omitempty"`
	MinHoldingLabel  string      `json:"minHoldingLabel"`
	NextHoldingLabel string      `json:"nextHoldingLabel,omitempty"`
}
