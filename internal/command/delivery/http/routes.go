package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Extra
// middleware, such as the rate limiter, applies to the parsing routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	commands := rg.Group("/commands")
	{
		commands.POST("/process", chain(mws, h.Process)...)
		commands.POST("/process/batch", chain(mws, h.ProcessBatch)...)
		commands.GET("/examples", h.Examples)
	}
}

func chain(mws []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(mws)+1)
	out = append(out, mws...)
	return append(out, h)
}
