package api

import (
	"context"
	"net/http"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/b2c-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

const healthCheckTimeout = 2 * time.Second

func (server *Server) checkHealth(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	
	if err := server.dbStore.Ping(checkCtx); err != nil {
		log.Err(err).Msg("health check: database unreachable")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	
	resp := gin.H{
		"status":          "ok",
		"connected_users": server.registry.Len(),
	}
	
	if server.taskInspector != nil {
		pending, err := server.taskInspector.PendingTasks(checkCtx, worker.QueueCritical)
		if err != nil {
			log.Warn().Err(err).Msg("health check: failed to inspect dispatch queue")
		} else {
			resp["pending_order_events"] = pending
		}
	}
	
	ctx.JSON(http.StatusOK, resp)
}
