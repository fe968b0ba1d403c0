package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/orderflow"
	"github.com/katatrina/b2c-BE/internal/util"
	"github.com/katatrina/b2c-BE/internal/validator"
	"github.com/rs/zerolog/log"
)

type createOrderRequest struct {
	// Total order amount in cents
	TotalAmount int64  `json:"total_amount" binding:"required,gt=0"`
	FullName    string `json:"full_name" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"required,max=20"`
	Address     string `json:"address" binding:"required,max=255"`
	City        string `json:"city" binding:"required,max=100"`
	PostalCode  string `json:"postal_code" binding:"required,max=20"`
}

func validateCreateOrderRequest(req createOrderRequest) error {
	if err := validator.ValidateFullName(req.FullName); err != nil {
		return fmt.Errorf("full_name %w", err)
	}
	if err := validator.ValidatePhoneNumber(req.Phone); err != nil {
		return fmt.Errorf("phone %w", err)
	}
	if err := validator.ValidatePostalCode(req.PostalCode); err != nil {
		return fmt.Errorf("postal_code %w", err)
	}
	
	return nil
}

func (server *Server) createOrder(ctx *gin.Context) {
	userID := authPayloadFrom(ctx).Subject
	
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if err := validateCreateOrderRequest(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	order, err := server.dbStore.CreateOrder(ctx, db.CreateOrderParams{
		UserID:      userID,
		Status:      db.OrderStatusPending,
		TotalAmount: req.TotalAmount,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		PickupCode:  util.GeneratePickupCode(),
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.ForeignKeyViolationCode && constraintName == db.OrderUserForeignKeyConstraint {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrUserNotFound))
			return
		}
		
		log.Err(err).Msg("failed to create order")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	log.Info().Int64("order_id", order.ID).Str("user_id", userID).Msg("order created")
	
	// Đơn hàng đã được lưu, lỗi gửi thông báo không ảnh hưởng kết quả trả về
	server.dispatcher.OnOrderCreated(ctx, order)
	
	ctx.JSON(http.StatusCreated, order)
}

func (server *Server) getOrder(ctx *gin.Context) {
	authPayload := authPayloadFrom(ctx)
	
	orderID, err := parseIDParam(ctx, "orderID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrInvalidOrderID))
		return
	}
	
	order, err := server.dbStore.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrOrderNotFound))
			return
		}
		
		log.Err(err).Int64("order_id", orderID).Msg("failed to get order")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	
	isOwner := order.UserID == authPayload.Subject
	isStaff := authPayload.Role == string(db.UserRoleAdmin) || authPayload.Role == string(db.UserRoleDelivery)
	if !isOwner && !isStaff {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
		return
	}
	
	// Chỉ chủ đơn mới được thấy mã nhận hàng
	if !isOwner {
		order.PickupCode = ""
	}
	
	ctx.JSON(http.StatusOK, order)
}

type updateOrderStatusRequest struct {
	Status db.OrderStatus `json:"status" binding:"required,oneof=pending processing ready_for_pickup delivered cancelled"`
}

func (server *Server) updateOrderStatus(ctx *gin.Context) {
	orderID, err := parseIDParam(ctx, "orderID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrInvalidOrderID))
		return
	}
	
	var req updateOrderStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	server.transitionOrder(ctx, orderflow.Request{
		OrderID: orderID,
		To:      req.Status,
		Trigger: orderflow.TriggerFor(req.Status),
	})
}

func (server *Server) markOrderReadyForPickup(ctx *gin.Context) {
	orderID, err := parseIDParam(ctx, "orderID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrInvalidOrderID))
		return
	}
	
	server.transitionOrder(ctx, orderflow.Request{
		OrderID: orderID,
		To:      db.OrderStatusReadyForPickup,
		Trigger: orderflow.TriggerOperator,
	})
}

type verifyOrderPickupRequest struct {
	OrderID    int64  `json:"order_id" binding:"required,gt=0"`
	UserID     string `json:"user_id" binding:"required"`
	PickupCode string `json:"pickup_code" binding:"required"`
}

func (server *Server) verifyOrderPickup(ctx *gin.Context) {
	var req verifyOrderPickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if err := validator.ValidatePickupCode(req.PickupCode); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("pickup_code %w", err)))
		return
	}
	
	if authPayloadFrom(ctx).Subject != req.UserID {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrUserIDMismatch))
		return
	}
	
	server.transitionOrder(ctx, orderflow.Request{
		OrderID:    req.OrderID,
		To:         db.OrderStatusDelivered,
		Trigger:    orderflow.TriggerPickupVerification,
		VerifierID: req.UserID,
		PickupCode: req.PickupCode,
	})
}

func (server *Server) transitionOrder(ctx *gin.Context, req orderflow.Request) {
	changed, err := server.workflow.Transition(ctx, req)
	if err != nil {
		status := transitionErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Int64("order_id", req.OrderID).Msg("failed to update order status")
		}
		if status == http.StatusNotFound {
			err = ErrOrderNotFound
		}
		
		ctx.JSON(status, errorResponse(err))
		return
	}
	
	ctx.JSON(http.StatusOK, changed)
}

func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	
	return id, nil
}
