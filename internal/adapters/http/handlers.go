package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Collab/internal/adapters/exec"
	"github.com/dkeye/Collab/internal/app/orch"
)

type ExecuteRequest struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// handlerExecute forwards {language, code} to the execution service and
// returns the result to the requester only. A downstream failure is an
// error response for this caller, never a broadcast and never fatal.
func handlerExecute(runner *exec.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExecuteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing language or code"})
			return
		}
		if !runner.Enabled() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "execution service not configured"})
			return
		}

		res, err := runner.Run(c.Request.Context(), req.Language, req.Code)
		if err != nil {
			log.Warn().Err(err).Str("module", "adapters.http").Msg("execute failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "execution failed"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// handlerListRooms exposes a read-only snapshot of active rooms.
func handlerListRooms(o *orch.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": o.Rooms.List()})
	}
}
