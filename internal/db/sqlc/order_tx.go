package db

import (
	"context"
	"fmt"
)

type UpdateOrderStatusTxParams struct {
	OrderID int64
	
	// CheckTransition runs against the locked order row and returns the status to apply.
	// Returning an error aborts the transaction without writing anything.
	CheckTransition func(order Order) (OrderStatus, error)
}

type UpdateOrderStatusTxResult struct {
	Order     Order       `json:"order"`
	OldStatus OrderStatus `json:"old_status"`
}

// UpdateOrderStatusTx locks the order row, validates the requested change and persists the new status.
// The result is only returned once the transaction has been committed.
func (store *SQLStore) UpdateOrderStatusTx(ctx context.Context, arg UpdateOrderStatusTxParams) (UpdateOrderStatusTxResult, error) {
	var result UpdateOrderStatusTxResult
	
	err := store.ExecTx(ctx, func(qTx *Queries) error {
		// 1. Khóa đơn hàng để các thao tác đổi trạng thái đồng thời được tuần tự hóa
		order, err := qTx.GetOrderForUpdate(ctx, arg.OrderID)
		if err != nil {
			return err
		}
		
		// 2. Kiểm tra chuyển trạng thái trên dữ liệu đã khóa
		newStatus, err := arg.CheckTransition(order)
		if err != nil {
			return err
		}
		
		// 3. Cập nhật trạng thái mới
		updatedOrder, err := qTx.UpdateOrderStatus(ctx, UpdateOrderStatusParams{
			ID:     order.ID,
			Status: newStatus,
		})
		if err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		
		result.OldStatus = order.Status
		result.Order = updatedOrder
		return nil
	})
	
	return result, err
}
