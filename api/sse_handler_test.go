package api

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	
	"github.com/google/uuid"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readFrame reads the next "data:" block from an event stream.
func readFrame(t *testing.T, reader *bufio.Reader) db.Notification {
	t.Helper()
	
	frames := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		var data string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				errs <- err
				return
			}
			line = strings.TrimRight(line, "\n")
			if line == "" && data != "" {
				frames <- data
				return
			}
			if strings.HasPrefix(line, "data: ") {
				data = strings.TrimPrefix(line, "data: ")
			}
		}
	}()
	
	select {
	case data := <-frames:
		var notification db.Notification
		require.NoError(t, json.Unmarshal([]byte(data), &notification))
		return notification
	case err := <-errs:
		t.Fatalf("failed to read frame: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
	}
	return db.Notification{}
}

func TestStreamNotificationsAPI(t *testing.T) {
	store := newOrderStore()
	server := newTestServer(t, store)
	userID := uuid.NewString()
	
	backlog := seedNotification(t, server, userID, "backlog")
	seedNotification(t, server, uuid.NewString(), "someone else")
	
	httpServer := httptest.NewServer(server.router)
	defer httpServer.Close()
	
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+"/v1/notifications/subscribe/"+userID, nil)
	require.NoError(t, err)
	
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()
	
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, event.ContentTypeEventStream, response.Header.Get("Content-Type"))
	
	reader := bufio.NewReader(response.Body)
	assert.Equal(t, backlog.ID, readFrame(t, reader).ID)
	
	require.Eventually(t, func() bool {
		return len(server.registry.ChannelsFor(userID)) == 1
	}, 2*time.Second, 5*time.Millisecond)
	
	pushed, err := server.broker.Publish(context.Background(), notification.Draft{UserID: userID, Title: "live", Message: "pushed"})
	require.NoError(t, err)
	
	got := readFrame(t, reader)
	assert.Equal(t, pushed.ID, got.ID)
	assert.Equal(t, "live", got.Title)
	
	// Ngắt kết nối thì subscriber phải được gỡ khỏi registry
	cancel()
	require.Eventually(t, func() bool {
		return server.registry.Len() == 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestStreamNotificationsAPIInvalidUserID(t *testing.T) {
	server := newTestServer(t, newOrderStore())
	
	for _, userID := range []string{"not-a-uuid", "%20"} {
		recorder := serve(t, server, http.MethodGet, "/v1/notifications/subscribe/"+userID, nil, "", "")
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	}
	assert.Equal(t, 0, server.registry.Len())
}

func TestStreamNotificationsAPINonCanonicalUserID(t *testing.T) {
	userID := uuid.NewString()
	
	testCases := []struct {
		name    string
		rawPath string
	}{
		{name: "Uppercase", rawPath: strings.ToUpper(userID)},
		{name: "Braced", rawPath: url.PathEscape("{" + userID + "}")},
		{name: "URN", rawPath: "urn:uuid:" + userID},
	}
	
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(t, newOrderStore())
			backlog := seedNotification(t, server, userID, "backlog")
			
			httpServer := httptest.NewServer(server.router)
			defer httpServer.Close()
			
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			
			request, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+"/v1/notifications/subscribe/"+tc.rawPath, nil)
			require.NoError(t, err)
			
			response, err := http.DefaultClient.Do(request)
			require.NoError(t, err)
			defer response.Body.Close()
			require.Equal(t, http.StatusOK, response.StatusCode)
			
			reader := bufio.NewReader(response.Body)
			assert.Equal(t, backlog.ID, readFrame(t, reader).ID)
			
			// Đăng ký theo dạng chuẩn nên push tới userID gốc vẫn đến được
			require.Eventually(t, func() bool {
				return len(server.registry.ChannelsFor(userID)) == 1
			}, 2*time.Second, 5*time.Millisecond)
			
			pushed, err := server.broker.Publish(context.Background(), notification.Draft{UserID: userID, Title: "live", Message: "pushed"})
			require.NoError(t, err)
			assert.Equal(t, pushed.ID, readFrame(t, reader).ID)
		})
	}
}
