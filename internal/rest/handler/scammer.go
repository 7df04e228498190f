package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/scamtrace/scamtrace/internal/database"
	"github.com/scamtrace/scamtrace/internal/database/types"
	"github.com/scamtrace/scamtrace/internal/database/types/enum"
	restTypes "github.com/scamtrace/scamtrace/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ScammerHandler handles scam report REST endpoints.
type ScammerHandler struct {
	service *database.Service
	logger  *zap.Logger
}

// NewScammerHandler creates a new scammer handler.
func NewScammerHandler(service *database.Service, logger *zap.Logger) *ScammerHandler {
	return &ScammerHandler{
		service: service,
		logger:  logger,
	}
}

// ReportScammer files a new scam report. The report starts out pending
// until a moderation decision verifies or rejects it.
func (h *ScammerHandler) ReportScammer(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.ReportScammerRequest
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil
	}

	scammer := &types.Scammer{
		Name:          body.Name,
		WalletAddress: body.WalletAddress,
		Description:   body.Description,
		ReporterID:    body.ReporterID,
	}

	if err := h.service.Scammer().Report(req.Context(), scammer); err != nil {
		if errors.Is(err, types.ErrInvalidReport) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to file scam report", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, scammer)
}

// GetScammer retrieves a single scam report by ID.
func (h *ScammerHandler) GetScammer(w http.ResponseWriter, req bunrouter.Request) error {
	scammer, err := h.service.Scammer().Get(req.Context(), req.Param("id"))
	if err != nil {
		if errors.Is(err, types.ErrScammerNotFound) {
			http.Error(w, "Scammer not found", http.StatusNotFound)
			return nil
		}

		if errors.Is(err, types.ErrInvalidScammerID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to get scam report", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	return bunrouter.JSON(w, scammer)
}

// ListScammers retrieves a page of scam reports, optionally filtered by
// status via the "status" query parameter.
func (h *ScammerHandler) ListScammers(w http.ResponseWriter, req bunrouter.Request) error {
	var status *enum.ScammerStatus
	if raw := req.URL.Query().Get("status"); raw != "" {
		parsed, err := enum.ScammerStatusString(raw)
		if err != nil {
			http.Error(w, "Invalid status filter", http.StatusBadRequest)
			return nil
		}

		status = &parsed
	}

	page, pageSize := pagination(req)

	scammers, total, err := h.service.Scammer().List(req.Context(), status, page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list scam reports", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	return bunrouter.JSON(w, restTypes.ListScammersResponse{
		Items: scammers,
		Total: total,
	})
}

// UpdateStatus applies a moderation decision to a scam report.
func (h *ScammerHandler) UpdateStatus(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.UpdateStatusRequest
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil
	}

	status, err := enum.ScammerStatusString(body.Status)
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return nil
	}

	if err := h.service.Scammer().SetStatus(req.Context(), req.Param("id"), status); err != nil {
		if errors.Is(err, types.ErrScammerNotFound) {
			http.Error(w, "Scammer not found", http.StatusNotFound)
			return nil
		}

		if errors.Is(err, types.ErrInvalidScammerID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to update report status", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
