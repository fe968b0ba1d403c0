package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
	
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/katatrina/b2c-BE/internal/notification"
	"github.com/katatrina/b2c-BE/internal/orderflow"
	"github.com/katatrina/b2c-BE/internal/token"
	"github.com/katatrina/b2c-BE/internal/util"
	"github.com/katatrina/b2c-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router        *gin.Engine
	dbStore       db.Store
	tokenMaker    token.Maker
	config        *util.Config
	registry      *event.Registry
	broker        *notification.Broker
	dispatcher    notification.Dispatcher
	workflow      *orderflow.Workflow
	taskInspector worker.TaskInspector
}

// NewServer creates a new HTTP server and set up routing.
// taskInspector may be nil when order events are dispatched inline.
func NewServer(
	store db.Store,
	config *util.Config,
	registry *event.Registry,
	broker *notification.Broker,
	dispatcher notification.Dispatcher,
	taskInspector worker.TaskInspector,
) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")
	
	server := &Server{
		dbStore:       store,
		tokenMaker:    tokenMaker,
		config:        config,
		registry:      registry,
		broker:        broker,
		dispatcher:    dispatcher,
		workflow:      orderflow.NewWorkflow(store, dispatcher),
		taskInspector: taskInspector,
	}
	
	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	
	router.GET("/health", server.checkHealth)
	
	v1 := router.Group("/v1")
	
	// Nhóm api cho đơn hàng
	orderGroup := v1.Group("/orders", authMiddleware(server.tokenMaker))
	{
		orderGroup.POST("", server.createOrder)                    // Khách hàng đặt đơn
		orderGroup.GET(":orderID", server.getOrder)                // Chủ đơn hoặc nhân viên xem đơn
		orderGroup.POST("verify-pickup", server.verifyOrderPickup) // Khách hàng xuất trình mã nhận hàng
		
		orderGroup.PATCH(":orderID/status", requiredRole(db.UserRoleAdmin), server.updateOrderStatus)
		orderGroup.PATCH(":orderID/ready-for-pickup", requiredRole(db.UserRoleAdmin, db.UserRoleDelivery), server.markOrderReadyForPickup)
	}
	
	notificationGroup := v1.Group("/notifications")
	{
		// EventSource không gửi được header Authorization nên endpoint SSE không yêu cầu token
		notificationGroup.GET("subscribe/:userID", server.streamNotifications)
		
		authGroup := notificationGroup.Group("", authMiddleware(server.tokenMaker))
		authGroup.GET("", server.listNotifications)
		authGroup.PUT(":id/read", server.markNotificationAsRead)
		authGroup.POST("", requiredRole(db.UserRoleAdmin), server.createNotification)
	}
	
	server.router = router
	return router
}

// Start runs the HTTP server on a specific address until ctx is cancelled.
// Request contexts derive from ctx so open notification streams end on shutdown.
func (server *Server) Start(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:    address,
		Handler: server.router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	
	go func() {
		<-ctx.Done()
		
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Err(err).Msg("failed to shutdown HTTP server gracefully")
		}
	}()
	
	log.Info().Str("address", address).Msg("HTTP server started ✅")
	err := httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	
	return nil
}
