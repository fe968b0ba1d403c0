package api

import (
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

func (server *Server) listNotifications(ctx *gin.Context) {
	userID := authPayloadFrom(ctx).Subject
	
	notifications, err := server.dbStore.ListNotificationsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to list notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	ctx.JSON(http.StatusOK, notifications)
}

func (server *Server) markNotificationAsRead(ctx *gin.Context) {
	userID := authPayloadFrom(ctx).Subject
	
	notificationID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrInvalidNotificationID))
		return
	}
	
	existing, err := server.dbStore.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrNotificationNotFound))
			return
		}
		
		log.Err(err).Int64("notification_id", notificationID).Msg("failed to get notification")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	// Không tiết lộ thông báo của người khác
	if existing.UserID != userID {
		ctx.JSON(http.StatusNotFound, errorResponse(ErrNotificationNotFound))
		return
	}
	
	updated, err := server.dbStore.MarkNotificationAsRead(ctx, notificationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrNotificationNotFound))
			return
		}
		
		log.Err(err).Int64("notification_id", notificationID).Msg("failed to mark notification as read")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	ctx.JSON(http.StatusOK, updated)
}

type createNotificationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
}

func (server *Server) createNotification(ctx *gin.Context) {
	var req createNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if _, err := server.dbStore.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrUserNotFound))
			return
		}
		
		log.Err(err).Str("user_id", req.UserID).Msg("failed to get user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	created, err := server.broker.Publish(ctx, notification.Draft{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("failed to publish notification")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	ctx.JSON(http.StatusCreated, created)
}
