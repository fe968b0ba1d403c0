package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/b2c-BE/internal/db/memdb"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/katatrina/b2c-BE/internal/util"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, store *memdb.Store) *Server {
	t.Helper()
	
	config := &util.Config{
		AllowedOrigins:           []string{"http://localhost:3000"},
		TokenSecretKey:           "01234567890123456789012345678901",
		NotificationPollInterval: time.Hour,
		NotificationBufferSize:   16,
	}
	
	registry := event.NewRegistry()
	broker := notification.NewBroker(store, registry, nil)
	pipeline := notification.NewPipeline(store, broker)
	
	server, err := NewServer(store, config, registry, broker, pipeline, nil)
	require.NoError(t, err)
	return server
}

func addAuthorization(t *testing.T, server *Server, request *http.Request, userID string, role db.UserRole) {
	t.Helper()
	
	accessToken, _, err := server.tokenMaker.CreateToken(userID, string(role), time.Minute)
	require.NoError(t, err)
	request.Header.Set(authorizationHeaderKey, fmt.Sprintf("%s %s", authorizationTypeBearer, accessToken))
}

// serve runs one request through the router. A zero role sends no Authorization header.
func serve(t *testing.T, server *Server, method, url string, body any, userID string, role db.UserRole) *httptest.ResponseRecorder {
	t.Helper()
	
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	
	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	if role != "" {
		addAuthorization(t, server, request, userID, role)
	}
	
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	
	var v T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &v))
	return v
}
