package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/scamtrace/scamtrace/internal/database"
	"github.com/scamtrace/scamtrace/internal/database/service"
	"github.com/scamtrace/scamtrace/internal/rest/handler"
	"github.com/scamtrace/scamtrace/internal/rest/middleware/ratelimit"
	"github.com/scamtrace/scamtrace/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	scammerHandler *handler.ScammerHandler
	bountyHandler  *handler.BountyHandler
	commentHandler *handler.CommentHandler
	badgeHandler   *handler.BadgeHandler
}

// NewServer creates a new REST API server.
func NewServer(
	db *database.Service,
	badges *service.BadgeService,
	logger *zap.Logger,
	config *config.API,
) http.Handler {
	server := &Server{
		scammerHandler: handler.NewScammerHandler(db, logger),
		bountyHandler:  handler.NewBountyHandler(db, logger),
		commentHandler: handler.NewCommentHandler(db, logger),
		badgeHandler:   handler.NewBadgeHandler(badges, logger),
	}

	rateLimiter := ratelimit.New(&config.RateLimit, logger)

	router := bunrouter.New()

	router.Use(
		rateLimiter.AsRESTMiddleware,
	).WithGroup("/v1", func(g *bunrouter.Group) {
		g.POST("/scammers", server.scammerHandler.ReportScammer)
		g.GET("/scammers", server.scammerHandler.ListScammers)
		g.GET("/scammers/:id", server.scammerHandler.GetScammer)
		g.PATCH("/scammers/:id/status", server.scammerHandler.UpdateStatus)

		g.POST("/scammers/:id/contributions", server.bountyHandler.AddContribution)
		g.GET("/scammers/:id/contributions", server.bountyHandler.ListContributions)

		g.PUT("/scammers/:id/comments", server.commentHandler.UpsertComment)
		g.GET("/scammers/:id/comments", server.commentHandler.ListComments)
		g.DELETE("/scammers/:id/comments/:commenter", server.commentHandler.DeleteComment)

		g.GET("/badges/:wallet", server.badgeHandler.GetBadge)
	})

	return gzhttp.GzipHandler(router)
}
