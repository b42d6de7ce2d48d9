package http

import (
	"github.com/gin-gonic/gin"

	"taskparse/pkg/response"
)

// Process godoc
// @Summary     Parse one command
// @Description Extracts intent, title, entities, priority and dates from a free-text command.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Command text"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.logError(ctx, "uc.Process", err), nil)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// ProcessBatch godoc
// @Summary     Parse a batch of commands
// @Description Parses every item against the same clock reading and returns results in input order.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       body body batchReq true "Commands"
// @Success     200  {object} batchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands/process/batch [POST]
func (h *handler) ProcessBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessBatch(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.logError(ctx, "uc.ProcessBatch", err), nil)
		return
	}

	response.OK(c, h.newBatchResp(output))
}

// Examples godoc
// @Summary     Parse the canned example phrases
// @Description Runs a fixed set of English and Greek phrases through the parser.
// @Tags        Commands
// @Produce     json
// @Success     200 {object} examplesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands/examples [GET]
func (h *handler) Examples(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Examples(ctx)
	if err != nil {
		response.Error(c, h.logError(ctx, "uc.Examples", err), nil)
		return
	}

	response.OK(c, h.newExamplesResp(output))
}
