package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"taskparse/pkg/response"
)

const (
	HealthMessage = "Task command parser is up"
	HealthVersion = "1.0.0"
	ServiceName   = "taskparse"

	readyTimeout = 2 * time.Second
)

// States reported under data.status.
const (
	stateHealthy  = "healthy"
	stateReady    = "ready"
	stateNotReady = "not_ready"
	stateAlive    = "alive"
)

type healthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
	Error   string `json:"error,omitempty"`
}

func newHealthStatus(state string) healthStatus {
	return healthStatus{
		Status:  state,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck reports that the process serves HTTP.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthStatus(stateHealthy))
}

// readyCheck parses a known command and answers 503 when that fails.
// @Summary Readiness Check
// @Description Check that the parser classifies a known command
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Parser is ready"
// @Failure 503 {object} response.Resp "Parser is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.commandUC.Ready(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		st := newHealthStatus(stateNotReady)
		st.Error = err.Error()
		response.ServiceUnavailable(c, st)
		return
	}
	response.OK(c, newHealthStatus(stateReady))
}

// liveCheck reports that the process is alive.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthStatus(stateAlive))
}
