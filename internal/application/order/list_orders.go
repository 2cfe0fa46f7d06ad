package order

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/order"
)

// 订单列表分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListOrdersUseCase 查询用户订单列表用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 订单列表请求
type ListOrdersRequest struct {
	UserID   uint // 来自Token
	Page     int
	PageSize int
}

// ListOrdersResponse 订单列表响应
type ListOrdersResponse struct {
	Orders []*OrderData `json:"orders"`
	Total  int64        `json:"total"`
	Page   int          `json:"page"`
	Size   int          `json:"size"`
}

// Execute 执行查询(只返回当前用户自己的订单)
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*OrderData, 0, len(orders))
	for _, o := range orders {
		list = append(list, toOrderData(o))
	}

	return &ListOrdersResponse{
		Orders: list,
		Total:  total,
		Page:   req.Page,
		Size:   req.PageSize,
	}, nil
}
