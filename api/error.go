package api

import (
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/orderflow"
)

var (
	ErrInsufficientPermission = errors.New("insufficient permission for this operation")
	ErrUserIDMismatch         = errors.New("user ID does not match authenticated user")
	ErrInvalidUserID          = errors.New("invalid user ID format")
	ErrInvalidOrderID         = errors.New("invalid order ID")
	ErrInvalidNotificationID  = errors.New("invalid notification ID")
	ErrOrderNotFound          = errors.New("order not found")
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrUserNotFound           = errors.New("user not found")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// transitionErrorStatus maps an order status transition error to its HTTP status code.
func transitionErrorStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, orderflow.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, orderflow.ErrOwnerMismatch):
		return http.StatusForbidden
	case errors.Is(err, orderflow.ErrInvalidPickupCode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
