package api

import (
	"context"
	"net/http"
	"testing"
	
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHealthAPI(t *testing.T) {
	server := newTestServer(t, newOrderStore())
	
	recorder := serve(t, server, http.MethodGet, "/health", nil, "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	
	body := decodeBody[map[string]any](t, recorder)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 0, body["connected_users"])
	assert.NotContains(t, body, "pending_order_events")
}

type fakeTaskInspector struct {
	pending int
}

func (i fakeTaskInspector) PendingTasks(ctx context.Context, queue string) (int, error) {
	return i.pending, nil
}

func TestCheckHealthAPIWithDispatchQueue(t *testing.T) {
	server := newTestServer(t, newOrderStore())
	server.taskInspector = fakeTaskInspector{pending: 4}
	server.registry.Add("client-1", event.NewSubscriber(1))
	
	recorder := serve(t, server, http.MethodGet, "/health", nil, "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	
	body := decodeBody[map[string]any](t, recorder)
	assert.EqualValues(t, 1, body["connected_users"])
	assert.EqualValues(t, 4, body["pending_order_events"])
}
