package notification

import (
	"fmt"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

const (
	titleOrderCreated       = "Order Created"
	titleNewOrderCreated    = "New Order Created"
	titleOrderStatusChanged = "Order Status Changed"
	titleOrderPickup        = "Order Ready for Pickup"
)

// statusFanout lists the staff roles notified, besides the owner, when an order enters a status.
// Processing and Delivered are handled identically.
var statusFanout = map[db.OrderStatus][]db.UserRole{
	db.OrderStatusProcessing: {db.UserRoleDelivery, db.UserRoleAdmin},
	db.OrderStatusDelivered:  {db.UserRoleDelivery, db.UserRoleAdmin},
}

// RolesFor returns the roles whose members must be looked up to resolve evt.
func RolesFor(evt Event) []db.UserRole {
	switch evt.Kind {
	case EventOrderCreated:
		return []db.UserRole{db.UserRoleAdmin}
	case EventOrderStatusChanged:
		if evt.OldStatus == evt.NewStatus {
			return nil
		}
		return statusFanout[evt.NewStatus]
	default:
		return nil
	}
}

// Resolve computes the notifications to emit for evt. It has no side effects.
// A status change to the same status resolves to no drafts.
func Resolve(evt Event, audience Audience) []Draft {
	var drafts []Draft
	
	switch evt.Kind {
	case EventOrderCreated:
		drafts = append(drafts, Draft{
			UserID:  evt.OwnerID,
			Title:   titleOrderCreated,
			Message: fmt.Sprintf("Your order with ID %d has been created successfully.", evt.OrderID),
		})
		drafts = appendRoleDrafts(drafts, audience, RolesFor(evt), titleNewOrderCreated,
			fmt.Sprintf("A new order with ID %d has been created.", evt.OrderID))
	
	case EventOrderStatusChanged:
		if evt.OldStatus == evt.NewStatus {
			return nil
		}
		
		status := evt.NewStatus.DisplayName()
		drafts = append(drafts, Draft{
			UserID:  evt.OwnerID,
			Title:   titleOrderStatusChanged,
			Message: fmt.Sprintf("Your order with ID %d has been updated to %s.", evt.OrderID, status),
		})
		drafts = appendRoleDrafts(drafts, audience, RolesFor(evt), titleOrderStatusChanged,
			fmt.Sprintf("An order with ID %d has been updated to %s.", evt.OrderID, status))
	
	case EventPickupReminder:
		drafts = append(drafts, Draft{
			UserID:  evt.OwnerID,
			Title:   titleOrderPickup,
			Message: fmt.Sprintf("Your order with ID %d is waiting for pickup. Present your pickup code to receive it.", evt.OrderID),
		})
	}
	
	return drafts
}

func appendRoleDrafts(drafts []Draft, audience Audience, roles []db.UserRole, title, message string) []Draft {
	for _, role := range roles {
		for _, userID := range audience[role] {
			drafts = append(drafts, Draft{
				UserID:  userID,
				Title:   title,
				Message: message,
			})
		}
	}
	
	return drafts
}
