package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(t *testing.T, server *Server, userID, title string) db.Notification {
	t.Helper()
	
	notification, err := server.dbStore.CreateNotification(context.Background(), db.CreateNotificationParams{
		UserID:  userID,
		Title:   title,
		Message: title + " message",
	})
	require.NoError(t, err)
	return notification
}

func TestListNotificationsAPI(t *testing.T) {
	server := newTestServer(t, newOrderStore())
	first := seedNotification(t, server, "client-1", "first")
	seedNotification(t, server, "client-2", "other")
	second := seedNotification(t, server, "client-1", "second")
	
	recorder := serve(t, server, http.MethodGet, "/v1/notifications", nil, "client-1", db.UserRoleClient)
	require.Equal(t, http.StatusOK, recorder.Code)
	
	notifications := decodeBody[[]db.Notification](t, recorder)
	require.Len(t, notifications, 2)
	assert.Equal(t, first.ID, notifications[0].ID)
	assert.Equal(t, second.ID, notifications[1].ID)
	
	recorder = serve(t, server, http.MethodGet, "/v1/notifications", nil, "delivery-1", db.UserRoleDelivery)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeBody[[]db.Notification](t, recorder))
}

func TestMarkNotificationAsReadAPI(t *testing.T) {
	server := newTestServer(t, newOrderStore())
	notification := seedNotification(t, server, "client-1", "hello")
	url := fmt.Sprintf("/v1/notifications/%d/read", notification.ID)
	
	recorder := serve(t, server, http.MethodPut, url, nil, "client-2", db.UserRoleClient)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	
	recorder = serve(t, server, http.MethodPut, url, nil, "client-1", db.UserRoleClient)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, decodeBody[db.Notification](t, recorder).IsRead)
	
	// Đánh dấu lại vẫn thành công
	recorder = serve(t, server, http.MethodPut, url, nil, "client-1", db.UserRoleClient)
	require.Equal(t, http.StatusOK, recorder.Code)
	
	recorder = serve(t, server, http.MethodPut, "/v1/notifications/999/read", nil, "client-1", db.UserRoleClient)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	
	recorder = serve(t, server, http.MethodPut, "/v1/notifications/abc/read", nil, "client-1", db.UserRoleClient)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateNotificationAPI(t *testing.T) {
	store := newOrderStore()
	server := newTestServer(t, store)
	body := createNotificationRequest{UserID: "client-1", Title: "Maintenance", Message: "Pickup counter closes early today."}
	
	recorder := serve(t, server, http.MethodPost, "/v1/notifications", body, "client-2", db.UserRoleClient)
	require.Equal(t, http.StatusForbidden, recorder.Code)
	
	recorder = serve(t, server, http.MethodPost, "/v1/notifications", body, "admin-1", db.UserRoleAdmin)
	require.Equal(t, http.StatusCreated, recorder.Code)
	
	created := decodeBody[db.Notification](t, recorder)
	assert.Equal(t, "client-1", created.UserID)
	assert.False(t, created.IsRead)
	assert.Equal(t, []db.Notification{created}, store.Notifications())
	
	body.UserID = "ghost"
	recorder = serve(t, server, http.MethodPost, "/v1/notifications", body, "admin-1", db.UserRoleAdmin)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	
	recorder = serve(t, server, http.MethodPost, "/v1/notifications", map[string]string{"user_id": "client-1"}, "admin-1", db.UserRoleAdmin)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
