package http

import (
	"github.com/gin-gonic/gin"
)

// processProcessReq binds the single-command request body. Text checks
// belong to the use case so batch and single requests reject alike.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processBatchReq binds the batch request body.
func (h *handler) processBatchReq(c *gin.Context) (batchReq, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}
