// Package memdb provides an in-memory db.Store for tests.
package memdb

import (
	"context"
	"sort"
	"sync"
	"time"
	
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
)

type Store struct {
	mu                 sync.Mutex
	users              map[string]db.User
	orders             map[int64]db.Order
	notifications      []db.Notification
	lastOrderID        int64
	lastNotificationID int64
	
	// FailCreateNotification makes CreateNotification return the given error.
	FailCreateNotification error
}

var _ db.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:  make(map[string]db.User),
		orders: make(map[int64]db.Order),
	}
}

// AddUser seeds a user with the given role.
func (s *Store) AddUser(id string, role db.UserRole) db.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	user := db.User{
		ID:        id,
		Username:  id,
		Email:     id + "@example.com",
		Role:      role,
		CreatedAt: time.Now().UTC().Add(time.Duration(len(s.users)) * time.Microsecond),
	}
	s.users[id] = user
	return user
}

// SetOrder overwrites an order as-is, bypassing the workflow.
func (s *Store) SetOrder(order db.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if order.ID > s.lastOrderID {
		s.lastOrderID = order.ID
	}
	s.orders[order.ID] = order
}

// Notifications returns a copy of every stored notification in id order.
func (s *Store) Notifications() []db.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	return append([]db.Notification(nil), s.notifications...)
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	user, ok := s.users[id]
	if !ok {
		return db.User{}, db.ErrRecordNotFound
	}
	return user, nil
}

func (s *Store) ListUserIDsByRole(ctx context.Context, role db.UserRole) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	users := make([]db.User, 0, len(s.users))
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	
	ids := make([]string, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}
	return ids, nil
}

func (s *Store) CreateOrder(ctx context.Context, arg db.CreateOrderParams) (db.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	s.lastOrderID++
	now := time.Now().UTC()
	order := db.Order{
		ID:          s.lastOrderID,
		UserID:      arg.UserID,
		Status:      arg.Status,
		TotalAmount: arg.TotalAmount,
		FullName:    arg.FullName,
		Phone:       arg.Phone,
		Address:     arg.Address,
		City:        arg.City,
		PostalCode:  arg.PostalCode,
		PickupCode:  arg.PickupCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *Store) GetOrderByID(ctx context.Context, id int64) (db.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	order, ok := s.orders[id]
	if !ok {
		return db.Order{}, db.ErrRecordNotFound
	}
	return order, nil
}

func (s *Store) GetOrderForUpdate(ctx context.Context, id int64) (db.Order, error) {
	return s.GetOrderByID(ctx, id)
}

func (s *Store) UpdateOrderStatus(ctx context.Context, arg db.UpdateOrderStatusParams) (db.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	return s.updateOrderStatus(arg)
}

func (s *Store) updateOrderStatus(arg db.UpdateOrderStatusParams) (db.Order, error) {
	order, ok := s.orders[arg.ID]
	if !ok {
		return db.Order{}, db.ErrRecordNotFound
	}
	order.Status = arg.Status
	order.UpdatedAt = time.Now().UTC()
	s.orders[order.ID] = order
	return order, nil
}

func (s *Store) UpdateOrderStatusTx(ctx context.Context, arg db.UpdateOrderStatusTxParams) (db.UpdateOrderStatusTxResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	var result db.UpdateOrderStatusTxResult
	
	order, ok := s.orders[arg.OrderID]
	if !ok {
		return result, db.ErrRecordNotFound
	}
	
	newStatus, err := arg.CheckTransition(order)
	if err != nil {
		return result, err
	}
	
	updated, err := s.updateOrderStatus(db.UpdateOrderStatusParams{ID: order.ID, Status: newStatus})
	if err != nil {
		return result, err
	}
	
	result.OldStatus = order.Status
	result.Order = updated
	return result, nil
}

func (s *Store) ListOrdersAwaitingPickupReminder(ctx context.Context, updatedBefore time.Time) ([]db.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	orders := []db.Order{}
	for _, order := range s.orders {
		if order.Status == db.OrderStatusReadyForPickup && !order.PickupRemindedAt.Valid && order.UpdatedAt.Before(updatedBefore) {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].UpdatedAt.Before(orders[j].UpdatedAt)
	})
	return orders, nil
}

func (s *Store) MarkOrderPickupReminded(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	order, ok := s.orders[id]
	if !ok {
		return nil
	}
	order.PickupRemindedAt = pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
	s.orders[id] = order
	return nil
}

func (s *Store) CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if s.FailCreateNotification != nil {
		return db.Notification{}, s.FailCreateNotification
	}
	
	s.lastNotificationID++
	notification := db.Notification{
		ID:        s.lastNotificationID,
		UserID:    arg.UserID,
		Title:     arg.Title,
		Message:   arg.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.notifications = append(s.notifications, notification)
	return notification, nil
}

func (s *Store) GetNotificationByID(ctx context.Context, id int64) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	for _, notification := range s.notifications {
		if notification.ID == id {
			return notification, nil
		}
	}
	return db.Notification{}, db.ErrRecordNotFound
}

func (s *Store) ListNotificationsByUserID(ctx context.Context, userID string) ([]db.Notification, error) {
	return s.ListNotificationsByUserIDAfter(ctx, db.ListNotificationsByUserIDAfterParams{UserID: userID})
}

func (s *Store) ListNotificationsByUserIDAfter(ctx context.Context, arg db.ListNotificationsByUserIDAfterParams) ([]db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	items := []db.Notification{}
	for _, notification := range s.notifications {
		if notification.UserID == arg.UserID && notification.ID > arg.ID {
			items = append(items, notification)
		}
	}
	return items, nil
}

func (s *Store) MarkNotificationAsRead(ctx context.Context, id int64) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return s.notifications[i], nil
		}
	}
	return db.Notification{}, db.ErrRecordNotFound
}
