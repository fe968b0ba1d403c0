package notification

import (
	"context"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

// Store is the durable notification history. IDs are assigned by the store and increase monotonically.
type Store interface {
	CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error)
	ListNotificationsByUserID(ctx context.Context, userID string) ([]db.Notification, error)
	ListNotificationsByUserIDAfter(ctx context.Context, arg db.ListNotificationsByUserIDAfterParams) ([]db.Notification, error)
	MarkNotificationAsRead(ctx context.Context, id int64) (db.Notification, error)
}

// Directory resolves role membership at the time an event is handled.
type Directory interface {
	ListUserIDsByRole(ctx context.Context, role db.UserRole) ([]string, error)
}
