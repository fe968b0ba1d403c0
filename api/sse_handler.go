package api

import (
	"net/http"
	"strings"
	
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// streamNotifications replays the user's notification history and then streams new ones
// as Server-Sent Events until the client disconnects or the server shuts down.
func (server *Server) streamNotifications(c *gin.Context) {
	parsed, err := uuid.Parse(strings.TrimSpace(c.Param("userID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(ErrInvalidUserID))
		return
	}
	// Chuẩn hoá về dạng chữ thường có gạch nối, trùng với khoá lưu trong store
	userID := parsed.String()
	
	// Thiết lập header SSE
	event.SetStreamHeaders(c.Writer.Header())
	c.Status(http.StatusOK)
	
	stream := event.NewSSEWriter(c.Writer)
	stream.Flush()
	
	session := notification.NewSession(userID, server.dbStore, server.registry, stream, notification.SessionConfig{
		PollInterval: server.config.NotificationPollInterval,
		BufferSize:   server.config.NotificationBufferSize,
	})
	
	log.Info().Str("user_id", userID).Msg("notification stream opened")
	if err = session.Run(c.Request.Context()); err != nil {
		log.Debug().Err(err).Str("user_id", userID).Msg("notification stream ended with error")
	}
}
