package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/scamtrace/scamtrace/internal/database"
	"github.com/scamtrace/scamtrace/internal/database/service"
	"github.com/scamtrace/scamtrace/internal/database/types"
	restTypes "github.com/scamtrace/scamtrace/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// CommentHandler handles comment REST endpoints.
type CommentHandler struct {
	service *database.Service
	logger  *zap.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(service *database.Service, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger,
	}
}

// UpsertComment writes or replaces a commenter's note on a scam report.
func (h *CommentHandler) UpsertComment(w http.ResponseWriter, req bunrouter.Request) error {
	var body restTypes.UpsertCommentRequest
	if err := sonic.ConfigDefault.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil
	}

	comment := &types.ScammerComment{
		ScammerID:   req.Param("id"),
		CommenterID: body.CommenterID,
		Message:     body.Message,
	}

	if err := h.service.Comment().Upsert(req.Context(), comment); err != nil {
		if errors.Is(err, types.ErrInvalidScammerID) || errors.Is(err, service.ErrEmptyComment) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to save comment", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	return bunrouter.JSON(w, comment)
}

// ListComments retrieves the comments on a scam report, newest-first.
func (h *CommentHandler) ListComments(w http.ResponseWriter, req bunrouter.Request) error {
	comments, err := h.service.Comment().List(req.Context(), req.Param("id"))
	if err != nil {
		if errors.Is(err, types.ErrInvalidScammerID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to list comments", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil
	}

	return bunrouter.JSON(w, comments)
}

// DeleteComment removes a commenter's own note from a scam report.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, req bunrouter.Request) error {
	err := h.service.Comment().Delete(req.Context(), req.Param("id"), req.Param("commenter"))
	if err != nil {
		switch {
		case errors.Is(err, types.ErrCommentNotFound):
			http.Error(w, "Comment not found", http.StatusNotFound)
		case errors.Is(err, types.ErrInvalidScammerID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("Failed to delete comment", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return nil
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
