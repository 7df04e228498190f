package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/scamtrace/scamtrace/internal/database"
	"github.com/scamtrace/scamtrace/internal/database/types"
	restTypes "github.com/scamtrace/scamtrace/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// BountyHandler handles bounty contribution REST endpoints.
type BountyHandler struct {
	service *database.Service
	logger  *zap.Logger
}

// NewBountyHandler creates a new bounty handler.
func NewBountyHandler(service *database.Service, logger *zap.Logger) *BountyHandler {
	return &BountyHandler{
		service: service,
		logger:  logger,
	}
}

// AddContribution records a bounty contribution against a scam report.
// A contribution whose ledger insert succeeded is reported as created even
// when the denormalized total could not be updated; the response carries an
// aggregateStale flag in that case.
func (h *BountyHandler) AddContribution(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.AddContributionRequest
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil
	}

	result, err := h.service.Bounty().AddContribution(
		req.Context(), req.Param("id"), body.ContributorID, body.Amount, body.Comment,
	)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrScammerNotFound):
			http.Error(w, "Scammer not found", http.StatusNotFound)
		case errors.Is(err, types.ErrInvalidScammerID),
			errors.Is(err, types.ErrInvalidContributor),
			errors.Is(err, types.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("Failed to record contribution", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return nil
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, restTypes.AddContributionResponse{
		Contribution:   result.Contribution,
		AggregateStale: result.AggregateStale,
	})
}

// ListContributions retrieves a page of a scam report's contributions,
// newest-first.
func (h *BountyHandler) ListContributions(w http.ResponseWriter, req bunrouter.Request) error {
	page, pageSize := pagination(req)

	items, total, err := h.service.Bounty().ListContributions(
		req.Context(), req.Param("id"), page, pageSize,
	)
	if err != nil {
		if errors.Is(err, types.ErrInvalidScammerID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to list contributions", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	return bunrouter.JSON(w, restTypes.ListContributionsResponse{
		Items: items,
		Total: total,
	})
}
