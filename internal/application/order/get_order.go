package order

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/order"
)

// GetOrderUseCase 查询订单详情用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建查询订单用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 按ID查询订单
// 只能查自己的订单,访问他人订单返回Forbidden
func (uc *GetOrderUseCase) Execute(ctx context.Context, id, userID uint) (*OrderData, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderForbidden
	}

	return toOrderData(o), nil
}
