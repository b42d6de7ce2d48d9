package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	commandHTTP "taskparse/internal/command/delivery/http"
)

// setupCommandDomain wires the command handler and registers its routes
// under /api/v1/commands. Parsing routes sit behind the rate limiter.
func (srv HTTPServer) setupCommandDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := commandHTTP.New(srv.l, srv.commandUC)

	commandHTTP.RegisterRoutes(api, h, srv.middleware.RateLimit())

	srv.l.Infof(ctx, "Command domain registered")
	return nil
}
