package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/token"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	server := newTestServer(t, newOrderStore())
	
	testCases := []struct {
		name      string
		setupAuth func(t *testing.T, request *http.Request)
		wantCode  int
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request) {
				addAuthorization(t, server, request, "admin-1", db.UserRoleAdmin)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "NoAuthorization",
			setupAuth: func(t *testing.T, request *http.Request) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "UnsupportedAuthorization",
			setupAuth: func(t *testing.T, request *http.Request) {
				request.Header.Set(authorizationHeaderKey, "Basic abc")
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "InvalidAuthorizationFormat",
			setupAuth: func(t *testing.T, request *http.Request) {
				request.Header.Set(authorizationHeaderKey, "Bearer")
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "ExpiredToken",
			setupAuth: func(t *testing.T, request *http.Request) {
				accessToken, _, err := server.tokenMaker.CreateToken("admin-1", string(db.UserRoleAdmin), -time.Minute)
				require.NoError(t, err)
				request.Header.Set(authorizationHeaderKey, authorizationTypeBearer+" "+accessToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "WrongRole",
			setupAuth: func(t *testing.T, request *http.Request) {
				addAuthorization(t, server, request, "client-1", db.UserRoleClient)
			},
			wantCode: http.StatusForbidden,
		},
	}
	
	router := gin.New()
	router.GET("/staff", authMiddleware(server.tokenMaker), requiredRole(db.UserRoleAdmin, db.UserRoleDelivery), func(ctx *gin.Context) {
		payload := authPayloadFrom(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": payload.Subject})
	})
	
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := http.NewRequest(http.MethodGet, "/staff", nil)
			require.NoError(t, err)
			tc.setupAuth(t, request)
			
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestAuthPayloadFrom(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	payload := &token.Payload{Role: string(db.UserRoleDelivery)}
	ctx.Set(authorizationPayloadKey, payload)
	
	require.Same(t, payload, authPayloadFrom(ctx))
}
