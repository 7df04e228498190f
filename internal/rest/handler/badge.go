package handler

import (
	"net/http"

	"github.com/scamtrace/scamtrace/internal/badge"
	"github.com/scamtrace/scamtrace/internal/database/service"
	restTypes "github.com/scamtrace/scamtrace/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// BadgeHandler handles badge REST endpoints.
type BadgeHandler struct {
	service *service.BadgeService
	logger  *zap.Logger
}

// NewBadgeHandler creates a new badge handler.
func NewBadgeHandler(service *service.BadgeService, logger *zap.Logger) *BadgeHandler {
	return &BadgeHandler{
		service: service,
		logger:  logger,
	}
}

// GetBadge evaluates the reputation badge for a wallet from its token
// holding and the bounties raised on its reports.
func (h *BadgeHandler) GetBadge(w http.ResponseWriter, req bunrouter.Request) error {
	info, err := h.service.GetBadge(req.Context(), req.Param("wallet"))
	if err != nil {
		h.logger.Error("Failed to evaluate badge",
			zap.String("wallet", req.Param("wallet")),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	response := restTypes.GetBadgeResponse{
		Info:            info,
		MinHoldingLabel: badge.FormatAmount(info.MinHolding),
	}

	if style, ok := badge.DefaultStyles[info.Tier.Name]; ok {
		response.Icon = style.Icon
		response.Color = style.Color
	}

	if info.Next != nil {
		response.NextHoldingLabel = badge.FormatAmount(info.Next.MinHolding)
	}

	return bunrouter.JSON(w, response)
}
