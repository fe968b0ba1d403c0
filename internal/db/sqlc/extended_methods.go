package db

var orderStatusDisplayNames = map[OrderStatus]string{
	OrderStatusPending:        "Pending",
	OrderStatusProcessing:     "Processing",
	OrderStatusReadyForPickup: "ReadyForPickup",
	OrderStatusDelivered:      "Delivered",
	OrderStatusCancelled:      "Cancelled",
}

// DisplayName returns the name used in user facing messages, e.g. "ReadyForPickup".
func (e OrderStatus) DisplayName() string {
	if name, ok := orderStatusDisplayNames[e]; ok {
		return name
	}
	
	return string(e)
}

// IsTerminal reports whether no further transition can leave this status.
func (e OrderStatus) IsTerminal() bool {
	return e == OrderStatusDelivered || e == OrderStatusCancelled
}
